// Package ui provides the command line interface for fecha.
package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/db"
	"github.com/javiermolinar/fecha/internal/history"
	"github.com/javiermolinar/fecha/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   history.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened on demand from the configuration.
func NewApp(repo history.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	var initialDate string

	a.root = &cobra.Command{
		Use:   "fecha",
		Short: "A terminal datepicker",
		Long: `Fecha is a terminal datepicker: a text input with a popup calendar,
month and year drill-down, and optional date-range constraints.

Pick a date with the mouse; the result is printed to stdout and kept
in a local history.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runPicker(initialDate)
		},
	}

	a.root.Flags().StringVar(&initialDate, "date", "", "Initial date (YYYY-MM-DD, defaults to today)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.historyCmd())

	return a
}

// runPicker opens the datepicker and prints the committed date.
func (a *App) runPicker(initialDate string) error {
	initial := calendar.Today()
	if initialDate != "" {
		d, err := calendar.Parse(initialDate)
		if err != nil {
			return err
		}
		initial = d
	}

	rng, err := a.config.DateRange()
	if err != nil {
		return fmt.Errorf("loading date range: %w", err)
	}

	repo, err := a.openRepo()
	if err != nil {
		return err
	}

	picked, err := tui.Run(tui.Config{
		Date:       initial,
		Range:      rng,
		DateFormat: a.config.Format.Date,
		Theme:      a.config.UI.Theme,
		QuitOnPick: true,
		OnChange: func(d calendar.Date) {
			// Recording is best effort; the pick itself must not fail.
			_ = repo.Record(context.Background(), d)
		},
	})
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	if picked != nil {
		fmt.Println(picked.Format(a.config.Format.Date))
	}
	return nil
}

// openRepo returns the configured history repository, opening the
// SQLite store on first use.
func (a *App) openRepo() (history.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	if a.config.History.Disabled {
		a.repo = history.Nop{}
		return a.repo, nil
	}

	repo, err := db.New(a.config.History.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	a.repo = repo
	return a.repo, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("fecha %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the history repository, if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
