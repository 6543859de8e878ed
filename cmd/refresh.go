package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flagQuiet bool

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the index from all configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		stats := st.Refresh()
		if !flagQuiet {
			color.Green("indexed %d files (%s)", stats.Files, stats.Strategy)
		}
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop index entries whose files no longer exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		st.Ensure()
		removed := st.Prune()
		if !flagQuiet {
			color.Green("pruned %d dead entries, %d files remain", removed, len(st.Paths()))
		}
		return nil
	},
}

func init() {
	refreshCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the summary line")
	pruneCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the summary line")
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(pruneCmd)
}
