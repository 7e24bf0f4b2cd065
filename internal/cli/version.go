package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the build version, overridable at link time via
// -ldflags "-X github.com/mesh-intelligence/atelier/internal/cli.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the atelier version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "atelier %s\n", Version)
		},
	}
}
