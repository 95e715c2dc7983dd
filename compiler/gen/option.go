package gen

import (
	"errors"
	"maps"
	"strings"

	"github.com/rs/zerolog"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the Kotlin package of the generated units.
// For example: "com.example.db".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		c.Package = strings.TrimSpace(pkg)
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithLayout selects the unit layout.
func WithLayout(l Layout) Option {
	return func(c *Config) error {
		if l != SingleFile && l != PerTable {
			return NewConfigError("Layout", l, "unknown layout")
		}
		c.Layout = l
		return nil
	}
}

// WithSingleFile selects the single-file layout with the given unit name.
func WithSingleFile(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("FileName", nil, "file name cannot be empty")
		}
		c.Layout = SingleFile
		c.FileName = name
		return nil
	}
}

// WithPerTable selects the per-table layout. With fullNames set, units are
// named after the declared object instead of the raw table name.
func WithPerTable(fullNames bool) Option {
	return func(c *Config) error {
		c.Layout = PerTable
		c.FileName = ""
		c.UseFullNames = fullNames
		return nil
	}
}

// WithCollate sets the collation passed to string accessors.
func WithCollate(collate string) Option {
	return func(c *Config) error {
		c.Collate = collate
		return nil
	}
}

// WithDateTime selects the date-time provider by name.
// Supported providers: "java-time", "kotlin-datetime", "joda-time".
func WithDateTime(name string) Option {
	return func(c *Config) error {
		p, err := LookupDateTime(name)
		if err != nil {
			return err
		}
		c.DateTime = p
		return nil
	}
}

// WithDao enables DAO mode: foreign keys become references and entity
// classes are emitted next to the tables.
func WithDao(enabled bool) Option {
	return func(c *Config) error {
		c.UseDao = enabled
		return nil
	}
}

// WithCustomMapping overrides the mapping of the column with the given raw name.
// Entries are not validated here; an incomplete entry is reported when the
// column is mapped.
func WithCustomMapping(column string, m CustomMapping) Option {
	return func(c *Config) error {
		if column == "" {
			return NewConfigError("CustomMappings", nil, "column name cannot be empty")
		}
		if c.CustomMappings == nil {
			c.CustomMappings = make(map[string]CustomMapping)
		}
		c.CustomMappings[column] = m
		return nil
	}
}

// WithCustomMappings adds several custom mappings.
func WithCustomMappings(ms map[string]CustomMapping) Option {
	return func(c *Config) error {
		if c.CustomMappings == nil {
			c.CustomMappings = make(map[string]CustomMapping, len(ms))
		}
		maps.Copy(c.CustomMappings, ms)
		return nil
	}
}

// WithEnumMapping binds the vendor type to an enum class. The type name is
// compared case-insensitively.
func WithEnumMapping(typeName string, m EnumMapping) Option {
	return func(c *Config) error {
		if typeName == "" {
			return NewConfigError("EnumMappings", nil, "type name cannot be empty")
		}
		if c.EnumMappings == nil {
			c.EnumMappings = make(map[string]EnumMapping)
		}
		c.EnumMappings[toLower(typeName)] = m
		return nil
	}
}

// WithIgnoreTables excludes tables from generation.
func WithIgnoreTables(tables ...string) Option {
	return func(c *Config) error {
		c.IgnoreTables = append(c.IgnoreTables, tables...)
		return nil
	}
}

// WithDefaultExpression replaces the raw default expression with the given
// initializer suffix, e.g. "CURRENT_TIMESTAMP" with
// ".defaultExpression(CurrentDateTime)". The suffix is appended as is, so
// it carries its own leading dot.
func WithDefaultExpression(raw, replacement string) Option {
	return func(c *Config) error {
		if replacement == "" {
			return NewConfigError("DefaultExpressions", raw, "replacement cannot be empty")
		}
		if c.DefaultExpressions == nil {
			c.DefaultExpressions = make(map[string]string)
		}
		c.DefaultExpressions[raw] = replacement
		return nil
	}
}

// WithLogger sets the logger receiving diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options, fills the
// defaults and validates the result.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Logger: zerolog.Nop()}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	c.defaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
