package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/exposedgen/catalog"
	"github.com/syssam/exposedgen/internal/logging"
)

// SnapshotCmd returns the snapshot command.
func SnapshotCmd() *cobra.Command {
	var (
		flags sourceFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save the inspected catalog to a file",
		Long: `Inspect the configured database and save the catalog, so generate can
run later with --snapshot and no database access.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.explicit = cmd.Flags().Changed("config")
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := logging.New(logging.WithOutput(cmd.ErrOrStderr()), logging.WithLevel(logging.Level(flags.verbose)))
			f, err := flags.load()
			if err != nil {
				return err
			}
			// A snapshot is always taken from the database.
			f.Snapshot = ""
			c, err := readCatalog(ctx, f, logger)
			if err != nil {
				return err
			}
			if err := catalog.SaveSnapshot(out, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d table(s) to %s\n", len(c.Tables), out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "catalog.msgpack", "snapshot file")
	return cmd
}
