package cli

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/syssam/exposedgen/catalog"
	"github.com/syssam/exposedgen/compiler/load"
	"github.com/syssam/exposedgen/internal/config"
)

// sourceFlags are shared by the commands that read a catalog.
type sourceFlags struct {
	config   string
	envFile  string
	driver   string
	dsn      string
	schema   string
	verbose  int
	explicit bool
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.config, "config", "c", config.DefaultPath, "configuration file")
	f.StringVar(&s.envFile, "env-file", "", "dotenv file loaded before reading the environment")
	f.StringVar(&s.driver, "driver", "", "database driver (sqlite, mysql, postgres)")
	f.StringVar(&s.dsn, "dsn", "", "data source name")
	f.StringVar(&s.schema, "schema", "", "schema to inspect")
	f.CountVarP(&s.verbose, "verbose", "v", "increase log verbosity")
}

// load reads the configuration file and applies the flag overrides.
// The default file may be absent.
func (s *sourceFlags) load() (*config.File, error) {
	var opts []config.LoadOption
	if s.envFile != "" {
		opts = append(opts, config.WithEnvFile(s.envFile))
	}
	if !s.explicit {
		opts = append(opts, config.Optional())
	}
	f, err := config.Load(s.config, opts...)
	if err != nil {
		return nil, err
	}
	if s.driver != "" {
		f.Database.Driver = s.driver
	}
	if s.dsn != "" {
		f.Database.DSN = s.dsn
	}
	if s.schema != "" {
		f.Database.Schema = s.schema
	}
	return f, nil
}

// readCatalog loads the snapshot when one is configured and crawls the
// database otherwise.
func readCatalog(ctx context.Context, f *config.File, logger zerolog.Logger) (*catalog.Catalog, error) {
	if f.Snapshot != "" {
		logger.Info().Str("snapshot", f.Snapshot).Msg("reading catalog snapshot")
		c, err := catalog.LoadSnapshot(f.Snapshot)
		if err != nil {
			return nil, err
		}
		return load.FilterReserved(c), nil
	}
	if f.Database.Driver == "" {
		return nil, errors.New("no database driver configured; set database.driver or pass --driver")
	}
	logger.Info().
		Str("driver", f.Database.Driver).
		Str("schema", f.Database.Schema).
		Msg("inspecting database")
	return load.Crawl(ctx, logger, f.Database.Driver, f.Database.DSN, f.Database.Schema)
}
