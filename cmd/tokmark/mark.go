package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tokmark/internal/driver"
	"tokmark/internal/markfmt"
)

var markCmd = &cobra.Command{
	Use:   "mark [flags] bundle...",
	Short: "Mark token ranges in parse bundles",
	Long:  `Mark loads parse bundles exported by a frontend, assigns every tree node its exact first/last source tokens, and prints the resulting ranges`,
	RunE:  runMark,
}

func init() {
	markCmd.Flags().String("format", "", "output format (pretty|json), default from options file")
	markCmd.Flags().String("dir", "", "mark every bundle under a directory")
	markCmd.Flags().Int("jobs", 0, "parallel workers for --dir (0 = all CPUs)")
	markCmd.Flags().String("out", "", "re-encode the marked bundle to this path (single input only)")
}

func runMark(cmd *cobra.Command, args []string) error {
	cfg, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}

	if dir == "" && len(args) == 0 {
		return fmt.Errorf("nothing to mark: pass bundle files or --dir")
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

	if out != "" {
		if len(results) != 1 {
			return fmt.Errorf("--out needs exactly one input bundle, got %d", len(results))
		}
		if err := results[0].Bundle.Write(out); err != nil {
			return fmt.Errorf("writing marked bundle: %w", err)
		}
	}

	opts := markfmt.PrettyOpts{Color: useColor(cfg, os.Stdout)}
	for _, res := range results {
		if len(results) > 1 {
			fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		}
		switch format {
		case "pretty":
			if err := markfmt.Pretty(os.Stdout, res.Tree, res.Stream, opts); err != nil {
				return err
			}
		case "json":
			if err := markfmt.JSON(os.Stdout, res.Tree, res.Stream); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return nil
}
