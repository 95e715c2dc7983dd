package load

import (
	"context"
	"slices"
	"strings"

	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"

	"github.com/syssam/exposedgen/catalog"
)

// Inspect reads the tables of the named schema through atlas and converts
// them into a catalog. An empty name selects the driver's default schema.
func Inspect(ctx context.Context, db schema.ExecQuerier, d *Driver, name string) (*catalog.Catalog, error) {
	drv, err := d.Open(db)
	if err != nil {
		return nil, &ConnectError{Driver: d.Name, Message: "open inspector", Cause: err}
	}
	if name == "" {
		name = d.Schema
	}
	s, err := drv.InspectSchema(ctx, name, &schema.InspectOptions{})
	if err != nil {
		return nil, &ConnectError{Driver: d.Name, Message: "inspect schema " + name, Cause: err}
	}
	return Convert(s), nil
}

// Convert builds a linked catalog from an inspected atlas schema.
// Tables are ordered by name.
func Convert(s *schema.Schema) *catalog.Catalog {
	c := &catalog.Catalog{}
	for _, t := range s.Tables {
		if strings.HasPrefix(t.Name, "sqlite_") {
			continue
		}
		c.Tables = append(c.Tables, convertTable(s.Name, t))
	}
	slices.SortFunc(c.Tables, func(a, b *catalog.Table) int {
		return strings.Compare(a.Name, b.Name)
	})
	return c.Link()
}

func convertTable(schemaName string, t *schema.Table) *catalog.Table {
	ct := &catalog.Table{Schema: schemaName, Name: t.Name}
	if t.Schema != nil && t.Schema.Name != "" {
		ct.Schema = t.Schema.Name
	}
	if t.PrimaryKey != nil {
		for _, p := range t.PrimaryKey.Parts {
			if p.C != nil {
				ct.PrimaryKey = append(ct.PrimaryKey, p.C.Name)
			}
		}
	}
	for _, c := range t.Columns {
		col := &catalog.Column{
			Name:          c.Name,
			AutoIncrement: autoIncrement(t, c),
		}
		if c.Type != nil {
			col.Nullable = c.Type.Null
			col.Type = DataType(c.Type)
		}
		if def, ok := defaultValue(c.Default); ok && !(col.AutoIncrement && isSequence(def)) {
			col.Default = catalog.StringPtr(def)
		}
		ct.Columns = append(ct.Columns, col)
	}
	// Exposed references a single column, composite keys are not carried.
	for _, fk := range t.ForeignKeys {
		if len(fk.Columns) != 1 || len(fk.RefColumns) != 1 || fk.RefTable == nil {
			continue
		}
		if col := ct.Column(fk.Columns[0].Name); col != nil {
			col.References = &catalog.ColumnRef{
				Table:  fk.RefTable.Name,
				Column: fk.RefColumns[0].Name,
			}
		}
	}
	return ct
}

func autoIncrement(t *schema.Table, c *schema.Column) bool {
	for _, a := range c.Attrs {
		switch a.(type) {
		case *sqlite.AutoIncrement, *mysql.AutoIncrement, *postgres.Identity:
			return true
		}
	}
	if c.Type != nil {
		if _, ok := c.Type.Type.(*postgres.SerialType); ok {
			return true
		}
	}
	if def, ok := defaultValue(c.Default); ok && isSequence(def) {
		return true
	}
	// SQLite records AUTOINCREMENT on the table for its single key column.
	if t.PrimaryKey != nil && len(t.PrimaryKey.Parts) == 1 && t.PrimaryKey.Parts[0].C == c {
		for _, a := range t.Attrs {
			if _, ok := a.(*sqlite.AutoIncrement); ok {
				return true
			}
		}
	}
	return false
}

func defaultValue(x schema.Expr) (string, bool) {
	switch x := x.(type) {
	case *schema.Literal:
		return x.V, true
	case *schema.RawExpr:
		return x.X, true
	}
	return "", false
}

func isSequence(def string) bool {
	return strings.HasPrefix(strings.ToLower(def), "nextval(")
}
