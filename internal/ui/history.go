package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/history"
)

func (a *App) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously picked dates",
		Long: `List dates previously committed through the picker, newest first.

Example:
  fecha history
  fecha history --limit=10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.openRepo()
			if err != nil {
				return err
			}

			entries, err := repo.List(context.Background(), limit)
			if err != nil {
				if errors.Is(err, history.ErrDisabled) {
					fmt.Println("History is disabled in the configuration.")
					return nil
				}
				return fmt.Errorf("listing history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No picked dates yet.")
				return nil
			}

			printHistory(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")
	cmd.AddCommand(a.historyClearCmd())

	return cmd
}

func (a *App) historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all picked dates from the history",
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.openRepo()
			if err != nil {
				return err
			}

			if err := repo.Clear(context.Background()); err != nil {
				if errors.Is(err, history.ErrDisabled) {
					fmt.Println("History is disabled in the configuration.")
					return nil
				}
				return fmt.Errorf("clearing history: %w", err)
			}

			fmt.Println("History cleared.")
			return nil
		},
	}
}

// printHistory renders the entries as a small table.
func printHistory(entries []history.Entry) {
	width := termWidth()
	if width > 48 {
		width = 48
	}

	fmt.Println(formatHeader("Picked dates"))
	fmt.Println(strings.Repeat("─", width))

	for _, e := range entries {
		fmt.Printf("  %s  %s\n",
			formatDate(e.Date.String()),
			formatMuted(e.PickedAt.Local().Format("2006-01-02 15:04")),
		)
	}

	fmt.Println(strings.Repeat("─", width))
	label := "picks"
	if len(entries) == 1 {
		label = "pick"
	}
	fmt.Println(formatStats(fmt.Sprintf("%d %s", len(entries), label)))
}
