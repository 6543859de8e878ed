package cmd

import (
	"fmt"
	"os"

	"vaultfind/internal/tui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Fuzzily pick a file across all sources and open it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("find needs an interactive terminal")
	}

	st, err := loadStore()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	choice, err := tui.RunFind(st, query)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	return openInEditor(choice)
}

func init() {
	rootCmd.AddCommand(findCmd)
}
