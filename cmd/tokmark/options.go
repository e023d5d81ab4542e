package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tokmark/internal/config"
)

// loadOptions merges the options file with the persistent flags; flags win.
func loadOptions(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Root().PersistentFlags().Changed("legacy-comprehensions") {
		legacy, err := cmd.Root().PersistentFlags().GetBool("legacy-comprehensions")
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get legacy-comprehensions flag: %w", err)
		}
		cfg.Dialect.LegacyComprehensions = legacy
	}
	if cmd.Root().PersistentFlags().Changed("color") {
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get color flag: %w", err)
		}
		cfg.Output.Color = colorFlag
	}
	return cfg, nil
}

// useColor resolves the tri-state color option against the output terminal.
func useColor(cfg config.Config, f *os.File) bool {
	switch cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
