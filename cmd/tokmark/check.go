package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tokmark/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] bundle...",
	Short: "Mark bundles and verify the range invariants",
	Long:  `Check marks each bundle, then verifies containment, bracket balance and text round-trip for every node, failing on the first violation`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("dir", "", "check every bundle under a directory")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for --dir (0 = all CPUs)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if dir == "" && len(args) == 0 {
		return fmt.Errorf("nothing to check: pass bundle files or --dir")
	}

	var results []*driver.Result
	if dir != "" {
		dirResults, err := driver.MarkDir(cmd.Context(), dir, cfg, jobs)
		if err != nil {
			return err
		}
		results = dirResults
	}
	for _, path := range args {
		res, err := driver.MarkFile(path, cfg)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	okMark := "ok"
	badMark := "FAIL"
	if useColor(cfg, os.Stdout) {
		okMark = color.GreenString(okMark)
		badMark = color.RedString(badMark)
	}

	var failed int
	for _, res := range results {
		if err := driver.Verify(res); err != nil {
			failed++
			fmt.Fprintf(os.Stdout, "%s %s: %v\n", badMark, res.Path, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s %s (%d nodes, %d tokens)\n", okMark, res.Path, res.Tree.Len(), res.Stream.Len())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d bundles failed invariant checks", failed, len(results))
	}
	return nil
}
