package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tokmark/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tokmark",
	Short: "Token-range marking for parse bundles",
	Long:  `tokmark assigns exact first/last source tokens to every node of an externally parsed tree`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "tokmark.toml", "options file")
	rootCmd.PersistentFlags().Bool("legacy-comprehensions", false, "mark set/dict comprehensions the legacy-grammar way")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
