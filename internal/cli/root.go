// Package cli implements the exposedgen command line.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd returns the exposedgen command with all subcommands attached.
func RootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "exposedgen",
		Short:   "Generate Kotlin Exposed table objects from a database schema",
		Version: version,
		Long: `exposedgen reads the tables of a database and writes Kotlin source
declaring one Exposed table object per table, plus DAO entity classes
when DAO mode is enabled.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(GenerateCmd())
	root.AddCommand(SnapshotCmd())
	root.AddCommand(InitCmd())
	return root
}
