// Implements: prd009-atelier-cli R2 (init command).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atelier/internal/sqlite"
)

// newInitCmd creates the "init" subcommand. Init resolves the configuration
// and data directories, writes a default config.yaml if none exists, and
// creates the database schema. Running init against an existing database is
// safe and preserves its contents.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration directory and database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig()
			if err != nil {
				return exitError(exitSysError, fmt.Sprintf("init: %v", err))
			}
			config, err := storeConfig(v)
			if err != nil {
				return exitError(exitSysError, fmt.Sprintf("init: %v", err))
			}

			backend := sqlite.NewBackend()
			if err := backend.Attach(config); err != nil {
				return exitError(exitSysError, fmt.Sprintf("init: attach store: %v", err))
			}
			if err := backend.Detach(); err != nil {
				return exitError(exitSysError, fmt.Sprintf("init: detach store: %v", err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized data directory %s\n", config.DataDir)
			return nil
		},
	}
}
