package load

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/syssam/exposedgen/catalog"
)

// reservedPrefix marks system tables that are never generated.
const reservedPrefix = "sys."

// FilterReserved returns the catalog without tables whose full name
// starts with "sys.". The catalog is modified in place.
func FilterReserved(c *catalog.Catalog) *catalog.Catalog {
	c.Tables = lo.Reject(c.Tables, func(t *catalog.Table, _ int) bool {
		return strings.HasPrefix(strings.ToLower(t.FullName()), reservedPrefix)
	})
	return c
}

// Crawl opens the database, inspects the schema and filters reserved
// tables. The connection is closed before returning.
func Crawl(ctx context.Context, logger zerolog.Logger, driver, dsn, schemaName string) (*catalog.Catalog, error) {
	db, d, err := Open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	q := Instrument(db, logger, 0)
	c, err := Inspect(ctx, q, d, schemaName)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("driver", d.Name).
		Int("tables", len(c.Tables)).
		Stringer("stats", q.Stats()).
		Msg("schema inspected")
	return FilterReserved(c), nil
}
