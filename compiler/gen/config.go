package gen

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// DefaultFileName is the unit name used by the single-file layout when none
// is configured.
const DefaultFileName = "Tables"

// Layout selects how declarations are grouped into units.
type Layout uint8

// Supported layouts.
const (
	// SingleFile places every table declaration in one unit.
	SingleFile Layout = iota
	// PerTable emits one unit per table.
	PerTable
)

// String returns the configuration spelling of the layout.
func (l Layout) String() string {
	switch l {
	case SingleFile:
		return "single-file"
	case PerTable:
		return "per-table"
	default:
		return "invalid"
	}
}

// ParseLayout parses a layout name. The empty string selects SingleFile.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single-file", "single", "singlefile":
		return SingleFile, nil
	case "per-table", "pertable", "table":
		return PerTable, nil
	default:
		return SingleFile, NewConfigError("Layout", s, "unknown layout; use single-file or per-table")
	}
}

type (
	// CustomMapping overrides type inference for one column.
	CustomMapping struct {
		// Type is the qualified Kotlin class of the property, e.g. "com.example.Money".
		Type string `json:"type" yaml:"type"`
		// Function is the package-qualified column function, e.g. "com.example.money".
		Function string `json:"function" yaml:"function"`
		// Typed reports whether Function takes Type as a type argument.
		Typed bool `json:"typed,omitempty" yaml:"typed,omitempty"`
		// ExistingColumn names an already declared column to reuse.
		// When set, the mapping does not generate a property.
		ExistingColumn string `json:"existingColumn,omitempty" yaml:"existingColumn,omitempty"`
		// IDTableClass is the supertype used when the column is an
		// unresolvable primary key.
		IDTableClass string `json:"idTableClass,omitempty" yaml:"idTableClass,omitempty"`
	}

	// EnumMapping binds a database type to a Kotlin enum class.
	EnumMapping struct {
		// Declaration is the SQL type declaration passed to customEnumeration.
		Declaration string `json:"declaration,omitempty" yaml:"declaration,omitempty"`
		// EnumClass is the qualified Kotlin enum class.
		EnumClass string `json:"enumClass" yaml:"enumClass"`
		// PgEnumClass is the qualified PGobject adapter used when writing
		// values to PostgreSQL.
		PgEnumClass string `json:"pgEnumClass,omitempty" yaml:"pgEnumClass,omitempty"`
	}
)

// Config holds the settings of one generation run. It is built once by
// NewConfig and treated as read-only afterwards.
type Config struct {
	// Package is the Kotlin package of the generated units.
	Package string
	// Layout groups declarations into units.
	Layout Layout
	// FileName names the unit of the single-file layout.
	FileName string
	// UseFullNames names per-table units after the declared object
	// instead of the raw table name.
	UseFullNames bool
	// Collate is passed to every string accessor when set.
	Collate string
	// DateTime selects the date and time type family.
	DateTime *DateTimeProvider
	// UseDao maps foreign keys to references and emits entity classes.
	UseDao bool
	// CustomMappings is keyed by raw column name.
	CustomMappings map[string]CustomMapping
	// EnumMappings is keyed by lower-case vendor type name.
	EnumMappings map[string]EnumMapping
	// IgnoreTables lists the tables excluded from generation.
	IgnoreTables []string
	// DefaultExpressions maps raw default expressions to initializer suffixes.
	DefaultExpressions map[string]string
	// Header is written as a comment at the top of every unit.
	Header string
	// Target is the output directory.
	Target string
	// Logger receives diagnostics.
	Logger zerolog.Logger
}

// Ignored reports whether the table is listed in IgnoreTables.
func (c *Config) Ignored(table string) bool {
	return lo.ContainsBy(c.IgnoreTables, func(name string) bool {
		return strings.EqualFold(name, table)
	})
}

// CustomMapping returns the custom mapping configured for the raw column name.
func (c *Config) CustomMapping(column string) (CustomMapping, bool) {
	m, ok := c.CustomMappings[column]
	return m, ok
}

// EnumMapping returns the enum mapping configured for the vendor type name.
func (c *Config) EnumMapping(typeName string) (EnumMapping, bool) {
	m, ok := c.EnumMappings[toLower(typeName)]
	return m, ok
}

// OutputConfig groups output-related settings.
type OutputConfig struct {
	Target   string
	Package  string
	Header   string
	Layout   Layout
	FileName string
}

// Output returns the output settings of the config.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:   c.Target,
		Package:  c.Package,
		Header:   c.Header,
		Layout:   c.Layout,
		FileName: c.FileName,
	}
}

// defaults fills the unset fields.
func (c *Config) defaults() {
	if c.DateTime == nil {
		c.DateTime = JavaTime
	}
	if c.Layout == SingleFile && c.FileName == "" {
		c.FileName = DefaultFileName
	}
}

// validate checks the combinations that options cannot check on their own.
func (c *Config) validate() error {
	switch c.Layout {
	case SingleFile:
		if c.FileName == "" {
			return NewConfigError("FileName", nil, "single-file layout requires a file name")
		}
	case PerTable:
		if c.FileName != "" {
			return NewConfigError("FileName", c.FileName, "per-table layout does not take a file name")
		}
	default:
		return NewConfigError("Layout", c.Layout, "unknown layout")
	}
	if c.Package != "" && !validPackage(c.Package) {
		return NewConfigError("Package", c.Package, "not a valid Kotlin package name")
	}
	return nil
}

func validPackage(pkg string) bool {
	for _, part := range strings.Split(pkg, ".") {
		if part == "" {
			return false
		}
		for i, r := range part {
			if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || i > 0 && r >= '0' && r <= '9' {
				continue
			}
			return false
		}
	}
	return true
}
