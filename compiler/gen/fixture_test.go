package gen

import (
	"github.com/syssam/exposedgen/catalog"
)

type colOpt func(*catalog.Column)

func nullable(c *catalog.Column)      { c.Nullable = true }
func autoIncrement(c *catalog.Column) { c.AutoIncrement = true }

func sized(size int) colOpt {
	return func(c *catalog.Column) { c.Type.Size = catalog.IntPtr(size) }
}

func scaled(size, scale int) colOpt {
	return func(c *catalog.Column) {
		c.Type.Size, c.Type.Scale = catalog.IntPtr(size), catalog.IntPtr(scale)
	}
}

func withDefault(v string) colOpt {
	return func(c *catalog.Column) { c.Default = catalog.StringPtr(v) }
}

func references(table, column string) colOpt {
	return func(c *catalog.Column) { c.References = &catalog.ColumnRef{Table: table, Column: column} }
}

func column(name, typeName string, native catalog.NativeType, opts ...colOpt) *catalog.Column {
	c := &catalog.Column{
		Name: name,
		Type: catalog.DataType{Name: typeName, Raw: typeName, Native: native},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func table(name string, pk []string, cols ...*catalog.Column) *catalog.Table {
	return &catalog.Table{Name: name, Columns: cols, PrimaryKey: pk}
}

func newCatalog(tables ...*catalog.Table) *catalog.Catalog {
	return (&catalog.Catalog{Tables: tables}).Link()
}

// usersTable is users(id INTEGER PRIMARY KEY AUTOINCREMENT,
// name VARCHAR(255) NOT NULL, created_at TIMESTAMP NULL).
func usersTable() *catalog.Table {
	return table("users", []string{"id"},
		column("id", "integer", catalog.NativeInteger, autoIncrement),
		column("name", "varchar", catalog.NativeString, sized(255)),
		column("created_at", "timestamp", catalog.NativeTimestamp, nullable),
	)
}

// petsTable references users.
func petsTable() *catalog.Table {
	return table("pets", []string{"id"},
		column("id", "bigint", catalog.NativeLong, autoIncrement),
		column("owner_id", "integer", catalog.NativeInteger, references("users", "id")),
		column("sitter_id", "integer", catalog.NativeInteger, nullable, references("users", "id")),
	)
}
