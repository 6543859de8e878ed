package cmd

import (
	"fmt"
	"os"

	"vaultfind/internal/tui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the index as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("list needs an interactive terminal")
		}

		st, err := loadStore()
		if err != nil {
			return err
		}

		choice, err := tui.RunBrowse(st)
		if err != nil {
			return err
		}
		if choice == "" {
			return nil
		}
		return openInEditor(choice)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
