// Package cli implements the atelier command-line interface.
// Implements: prd009-atelier-cli (R1 root command, R6 global flags,
//             R7 exit codes); docs/ARCHITECTURE § System Components.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes (prd009-atelier-cli R7).
const (
	exitSuccess  = 0
	exitUserErr  = 1
	exitSysError = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
}

var flags rootFlags

// NewRootCmd creates the top-level "atelier" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atelier",
		Short: "Backend for a personal content site",
		Long: "Atelier stores articles, projects, quotes, daily intentions,\n" +
			"contemplations, and sticky notes in SQLite and serves them over\n" +
			"an HTTP JSON API.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .atelier-db)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserErr)
	}
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
