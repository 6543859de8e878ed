package cmd

import (
	"fmt"
	"os"

	"vaultfind/internal/config"
	"vaultfind/internal/index"

	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "vaultfind",
	Short: "Fuzzy file finder across multiple aliased directory trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/vaultfind/config.yaml)")
}

// loadStore reads the configuration and creates an empty index store.
// Operations build it lazily on first use.
func loadStore() (*index.Store, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return index.NewStore(cfg), nil
}
