// Package cli is the friendship-offers command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. With no subcommand it serves.
func NewRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "friendship-offers",
		Short:         "Friendship Offers™ API server and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(
		serve,
		newMailTestCmd(),
		newMatchCmd(),
		newRosterCmd(),
	)
	return root
}
