package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/classify"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/cli"
)

var guessCmd = &cobra.Command{
	Use:   "guess <description>",
	Short: "Guess title, category, and amount from a description",
	Long:  "Runs the expense classifier against a free-text description and prints what the dashboard's guess-fill would produce.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGuess,
}

func init() {
	rootCmd.AddCommand(guessCmd)
}

func runGuess(_ *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	fmt.Printf("  Title:    %s\n", classify.BuildTitle(description))
	fmt.Printf("  Category: %s\n", classify.Guess(description))

	if amount, ok := classify.ExtractAmount(description); ok {
		fmt.Printf("  Amount:   %s\n", cli.FormatRupees(amount))
	} else {
		fmt.Println("  Amount:   not found")
	}

	return nil
}
