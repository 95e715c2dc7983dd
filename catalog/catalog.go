package catalog

import (
	"strings"
)

// NativeType is the coarse, database-agnostic classification of a column
// type. It plays the role of the driver-mapped class in JDBC metadata.
type NativeType uint8

// Native type classifications.
const (
	NativeOther NativeType = iota
	NativeInteger
	NativeLong
	NativeDecimal
	NativeFloat
	NativeDouble
	NativeBoolean
	NativeString
	NativeClob
	NativeBlob
	NativeBytes
	NativeUUID
	NativeDate
	NativeTime
	NativeTimestamp
)

var nativeNames = [...]string{
	NativeOther:     "other",
	NativeInteger:   "integer",
	NativeLong:      "long",
	NativeDecimal:   "decimal",
	NativeFloat:     "float",
	NativeDouble:    "double",
	NativeBoolean:   "boolean",
	NativeString:    "string",
	NativeClob:      "clob",
	NativeBlob:      "blob",
	NativeBytes:     "bytes",
	NativeUUID:      "uuid",
	NativeDate:      "date",
	NativeTime:      "time",
	NativeTimestamp: "timestamp",
}

// String returns the lower-case name of the native type.
func (t NativeType) String() string {
	if int(t) < len(nativeNames) {
		return nativeNames[t]
	}
	return "invalid"
}

type (
	// Catalog is an ordered set of tables.
	Catalog struct {
		Tables []*Table `msgpack:"tables"`
	}

	// Table describes one database table.
	Table struct {
		// Schema the table lives in. Empty for engines without schemas.
		Schema string `msgpack:"schema,omitempty"`
		// Name is the raw table name.
		Name string `msgpack:"name"`
		// Columns in declaration order.
		Columns []*Column `msgpack:"columns"`
		// PrimaryKey holds the ordered names of the constrained columns.
		// It is empty when the table has no primary key.
		PrimaryKey []string `msgpack:"primary_key,omitempty"`
	}

	// Column describes one table column.
	Column struct {
		// Table is the owning table. It is a back-reference only.
		Table *Table `msgpack:"-"`
		// Name is the raw column name.
		Name string `msgpack:"name"`
		// Nullable reports whether the database accepts NULL.
		Nullable bool `msgpack:"nullable,omitempty"`
		// PrimaryKey reports whether the column is part of the primary key.
		PrimaryKey bool `msgpack:"primary_key,omitempty"`
		// AutoIncrement reports whether the database assigns the value.
		AutoIncrement bool `msgpack:"auto_increment,omitempty"`
		// Type of the column.
		Type DataType `msgpack:"type"`
		// Default is the raw default expression, if any.
		Default *string `msgpack:"default,omitempty"`
		// References is the foreign-key target of the column, if any.
		References *ColumnRef `msgpack:"references,omitempty"`
	}

	// DataType describes the type of a column.
	DataType struct {
		// Name is the lower-case vendor type name without arguments,
		// e.g. "int8" or "varchar".
		Name string `msgpack:"name"`
		// Raw is the vendor spelling as reported by the database,
		// e.g. "varchar(255)".
		Raw string `msgpack:"raw,omitempty"`
		// Native is the generic classification of the type.
		Native NativeType `msgpack:"native"`
		// MappedClass is the class a driver maps the type to, when known
		// (e.g. "java.time.LocalDate"). Crawled catalogs leave it empty.
		MappedClass string `msgpack:"mapped_class,omitempty"`
		// Size is the declared length or numeric precision.
		Size *int `msgpack:"size,omitempty"`
		// Scale is the declared numeric scale.
		Scale *int `msgpack:"scale,omitempty"`
	}

	// ColumnRef points at a column of another (or the same) table.
	ColumnRef struct {
		Table  string `msgpack:"table"`
		Column string `msgpack:"column"`
	}
)

// FullName returns the schema-qualified name of the table.
func (t *Table) FullName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// Column returns the column with the given name, compared case-insensitively.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// PrimaryKeyColumns returns the primary-key columns in key order.
// Names that do not resolve to a column are skipped.
func (t *Table) PrimaryKeyColumns() []*Column {
	cols := make([]*Column, 0, len(t.PrimaryKey))
	for _, name := range t.PrimaryKey {
		if c := t.Column(name); c != nil {
			cols = append(cols, c)
		}
	}
	return cols
}

// Table returns the table with the given name, compared case-insensitively.
func (c *Catalog) Table(name string) *Table {
	for _, t := range c.Tables {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return nil
}

// Lookup resolves a column reference. It returns nil if either the table
// or the column does not exist.
func (c *Catalog) Lookup(ref ColumnRef) *Column {
	t := c.Table(ref.Table)
	if t == nil {
		return nil
	}
	return t.Column(ref.Column)
}

// Link sets the table back-reference of every column and marks the
// columns listed in each table's primary key. It returns the catalog.
func (c *Catalog) Link() *Catalog {
	for _, t := range c.Tables {
		for _, col := range t.Columns {
			col.Table = t
		}
		for _, col := range t.PrimaryKeyColumns() {
			col.PrimaryKey = true
		}
	}
	return c
}

// String returns the vendor spelling of the type.
func (d DataType) String() string {
	if d.Raw != "" {
		return d.Raw
	}
	return d.Name
}

// IntPtr returns a pointer to v. It is a helper for building data types.
func IntPtr(v int) *int { return &v }

// StringPtr returns a pointer to v. It is a helper for building defaults.
func StringPtr(v string) *string { return &v }
