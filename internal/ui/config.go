package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration fecha is running with and where it was
loaded from.

Example:
  fecha config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("Config file: %s\n\n", config.DefaultConfigPath())
			printConfig(a.config)
			return nil
		},
	}
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("[ui]"))
	themeName := cfg.UI.Theme
	if !theme.IsAvailable(themeName) {
		themeName = fmt.Sprintf("%s (unknown, falls back to mocha)", themeName)
	}
	fmt.Printf("  theme = %s\n\n", themeName)

	fmt.Println(formatHeader("[format]"))
	fmt.Printf("  date = %s\n\n", cfg.Format.Date)

	fmt.Println(formatHeader("[range]"))
	min := cfg.Range.Min
	if min == "" {
		min = formatMuted("(unbounded)")
	}
	max := cfg.Range.Max
	if max == "" {
		max = formatMuted("(unbounded)")
	}
	fmt.Printf("  min = %s\n", min)
	fmt.Printf("  max = %s\n\n", max)

	fmt.Println(formatHeader("[history]"))
	fmt.Printf("  db_path = %s\n", cfg.History.DBPath)
	fmt.Printf("  disabled = %v\n", cfg.History.Disabled)
}
