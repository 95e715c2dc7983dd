package load

import (
	"context"
	"database/sql"
	"slices"
	"strings"

	"ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"
	"github.com/samber/lo"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver describes a supported database.
type Driver struct {
	// Name is the registry name of the driver.
	Name string
	// SQLDriver is the database/sql driver name.
	SQLDriver string
	// Schema is inspected when no schema is given. Empty selects the
	// connection's current schema.
	Schema string
	// Open returns the atlas driver used for inspection.
	Open func(schema.ExecQuerier) (migrate.Driver, error)
}

// Driver names.
const (
	SQLite   = "sqlite"
	MySQL    = "mysql"
	Postgres = "postgres"
)

var drivers = map[string]*Driver{
	SQLite: {
		Name:      SQLite,
		SQLDriver: "sqlite",
		Schema:    "main",
		Open:      sqlite.Open,
	},
	MySQL: {
		Name:      MySQL,
		SQLDriver: "mysql",
		Open:      mysql.Open,
	},
	Postgres: {
		Name:      Postgres,
		SQLDriver: "postgres",
		Schema:    "public",
		Open:      postgres.Open,
	},
}

var aliases = map[string]string{
	"sqlite3":    SQLite,
	"mariadb":    MySQL,
	"postgresql": Postgres,
	"pg":         Postgres,
}

// Drivers returns the sorted names of the supported drivers.
func Drivers() []string {
	names := lo.Keys(drivers)
	slices.Sort(names)
	return names
}

// Lookup returns the driver registered under name or one of its aliases.
func Lookup(name string) (*Driver, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if d, ok := drivers[key]; ok {
		return d, nil
	}
	return nil, &ConnectError{
		Driver:  name,
		Message: "unsupported driver; use " + strings.Join(Drivers(), ", "),
	}
}

// Open opens a connection pool for the driver and verifies it with a ping.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, *Driver, error) {
	d, err := Lookup(driver)
	if err != nil {
		return nil, nil, err
	}
	if dsn == "" {
		return nil, nil, &ConnectError{Driver: d.Name, Message: "missing data source name"}
	}
	db, err := sql.Open(d.SQLDriver, dsn)
	if err != nil {
		return nil, nil, &ConnectError{Driver: d.Name, Message: "open", Cause: err}
	}
	if err := connect(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, d, nil
}

// connect pings the database.
func connect(ctx context.Context, db *sql.DB, d *Driver) error {
	if err := db.PingContext(ctx); err != nil {
		return &ConnectError{Driver: d.Name, Message: "ping", Cause: err}
	}
	return nil
}
