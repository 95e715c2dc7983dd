package cli

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/exposedgen/compiler/gen"
	"github.com/syssam/exposedgen/compiler/gen/kotlin"
	"github.com/syssam/exposedgen/internal/logging"
)

type generateFlags struct {
	sourceFlags
	out      string
	snapshot string
	watch    bool
}

// GenerateCmd returns the generate command.
func GenerateCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Exposed table objects",
		Long: `Inspect the configured database (or read a catalog snapshot) and write
the Kotlin units into the output directory.

With --watch the generator runs again whenever the configuration file
changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.explicit = cmd.Flags().Changed("config")
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if !flags.watch {
				_, err := runGenerate(ctx, &flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
				return err
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, flags.config, func() error {
				_, err := runGenerate(ctx, &flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
				return err
			}, logging.New(logging.WithOutput(cmd.ErrOrStderr()), logging.WithLevel(logging.Level(flags.verbose))))
		},
	}
	flags.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&flags.out, "out", "o", "", "output directory")
	f.StringVar(&flags.snapshot, "snapshot", "", "read the catalog from a snapshot file")
	f.BoolVarP(&flags.watch, "watch", "w", false, "regenerate when the configuration file changes")
	return cmd
}

// runGenerate runs one full pipeline and prints the summary to stdout.
func runGenerate(ctx context.Context, flags *generateFlags, stdout, stderr io.Writer) (*gen.Graph, error) {
	logger := logging.New(logging.WithOutput(stderr), logging.WithLevel(logging.Level(flags.verbose)))
	f, err := flags.load()
	if err != nil {
		return nil, err
	}
	if flags.out != "" {
		f.Output.Dir = flags.out
	}
	if flags.snapshot != "" {
		f.Snapshot = flags.snapshot
	}
	cfg, err := f.Config(logger)
	if err != nil {
		return nil, err
	}
	cat, err := readCatalog(ctx, f, logger)
	if err != nil {
		return nil, err
	}
	g, err := gen.NewGraph(cfg, cat)
	if err != nil {
		return nil, err
	}
	paths, err := gen.Generate(ctx, g, kotlin.New())
	if err != nil {
		return nil, err
	}
	printSummary(stdout, g, paths)
	return g, nil
}
