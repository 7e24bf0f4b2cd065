// Implements: prd006-export (JSONL backup and restore commands).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atelier/internal/sqlite"
)

// newExportCmd creates the "export" subcommand, which writes every table as
// a JSONL file into the given directory.
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Export all content to JSONL files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, fmt.Sprintf("export: %v", err))
			}
			defer backend.Detach()

			if err := backend.ExportJSONL(args[0]); err != nil {
				return exitError(exitSysError, fmt.Sprintf("export: %v", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}
}

// newImportCmd creates the "import" subcommand, which replaces the database
// contents with records from JSONL files in the given directory.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Import content from JSONL files, replacing existing data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachBackend()
			if err != nil {
				return exitError(exitSysError, fmt.Sprintf("import: %v", err))
			}
			defer backend.Detach()

			if err := backend.ImportJSONL(args[0]); err != nil {
				return exitError(exitSysError, fmt.Sprintf("import: %v", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported from %s\n", args[0])
			return nil
		},
	}
}

// attachBackend loads the configuration and returns an attached SQLite
// backend. The caller is responsible for Detach.
func attachBackend() (*sqlite.Backend, error) {
	v, err := loadConfig()
	if err != nil {
		return nil, err
	}
	config, err := storeConfig(v)
	if err != nil {
		return nil, err
	}
	backend := sqlite.NewBackend()
	if err := backend.Attach(config); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return backend, nil
}
