// Package cmd implements the expensetracker CLI commands.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/config"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

var flagTheme string

var rootCmd = &cobra.Command{
	Use:   "expensetracker",
	Short: "Student expense tracker",
	Long:  "Track your daily expenses against a monthly budget, with category stats and a spending pie chart.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (flexoki-dark, campus-night, terminal)")
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
