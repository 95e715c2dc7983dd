// Package config loads the exposedgen configuration file and turns it into
// generator options.
//
// Values are merged in this order, later sources winning: built-in defaults,
// the YAML file, then environment variables prefixed with EXPOSEDGEN_.
// A double underscore separates nested keys, so EXPOSEDGEN_DATABASE__DSN
// overrides database.dsn.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "EXPOSEDGEN_"
	// DefaultPath is the configuration file looked up when none is given.
	DefaultPath = "exposed.yaml"
	// DefaultEnvFile is loaded when present and no other file is given.
	DefaultEnvFile = ".env"
)

type (
	// File is the on-disk configuration.
	File struct {
		Database Database `koanf:"database" yaml:"database"`
		Output   Output   `koanf:"output" yaml:"output"`
		Mapping  Mapping  `koanf:"mapping" yaml:"mapping"`
		// Snapshot reads the catalog from a snapshot file instead of a database.
		Snapshot string `koanf:"snapshot" yaml:"snapshot,omitempty"`
	}

	// Database selects the crawled database.
	Database struct {
		Driver string `koanf:"driver" yaml:"driver"`
		DSN    string `koanf:"dsn" yaml:"dsn"`
		Schema string `koanf:"schema" yaml:"schema,omitempty"`
	}

	// Output controls where and how units are written.
	Output struct {
		Dir       string `koanf:"dir" yaml:"dir"`
		Package   string `koanf:"package" yaml:"package"`
		Layout    string `koanf:"layout" yaml:"layout"`
		FileName  string `koanf:"file_name" yaml:"file_name,omitempty"`
		FullNames bool   `koanf:"full_names" yaml:"full_names,omitempty"`
		Header    string `koanf:"header" yaml:"header,omitempty"`
	}

	// Mapping holds the type-mapping settings.
	Mapping struct {
		DateTime string         `koanf:"date_time" yaml:"date_time"`
		Collate  string         `koanf:"collate" yaml:"collate,omitempty"`
		Dao      bool           `koanf:"dao" yaml:"dao"`
		Ignore   []string       `koanf:"ignore" yaml:"ignore,omitempty"`
		Custom   []CustomEntry  `koanf:"custom" yaml:"custom,omitempty"`
		Enums    []EnumEntry    `koanf:"enums" yaml:"enums,omitempty"`
		Defaults []DefaultEntry `koanf:"defaults" yaml:"defaults,omitempty"`
	}

	// CustomEntry maps one column name to a custom column function.
	CustomEntry struct {
		Column         string `koanf:"column" yaml:"column"`
		Type           string `koanf:"type" yaml:"type,omitempty"`
		Function       string `koanf:"function" yaml:"function,omitempty"`
		Typed          bool   `koanf:"typed" yaml:"typed,omitempty"`
		ExistingColumn string `koanf:"existing_column" yaml:"existing_column,omitempty"`
		IDTableClass   string `koanf:"id_table_class" yaml:"id_table_class,omitempty"`
	}

	// EnumEntry binds a database type to a Kotlin enum class.
	EnumEntry struct {
		Type        string `koanf:"type" yaml:"type"`
		Declaration string `koanf:"declaration" yaml:"declaration,omitempty"`
		EnumClass   string `koanf:"enum_class" yaml:"enum_class"`
		PgEnumClass string `koanf:"pg_enum_class" yaml:"pg_enum_class,omitempty"`
	}

	// DefaultEntry replaces a raw default expression by an initializer suffix.
	DefaultEntry struct {
		Expression  string `koanf:"expression" yaml:"expression"`
		Replacement string `koanf:"replacement" yaml:"replacement"`
	}
)

// defaults are loaded before the file.
var defaults = map[string]any{
	"output.dir":        "build/generated",
	"output.layout":     "single-file",
	"mapping.date_time": "java-time",
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	envFile  string
	optional bool
}

// WithEnvFile loads the given dotenv file before reading the environment.
// A missing file is an error.
func WithEnvFile(path string) LoadOption {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// Optional tolerates a missing configuration file.
func Optional() LoadOption {
	return func(o *loadOptions) {
		o.optional = true
	}
}

// Load reads the configuration file at path. An empty path skips the file.
func Load(path string, opts ...LoadOption) (*File, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if err := loadEnvFile(o.envFile); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := loadConfigFile(k, path, o.optional); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	f := &File{}
	if err := k.Unmarshal("", f); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return f, nil
}

// envKey turns EXPOSEDGEN_OUTPUT__FILE_NAME into output.file_name.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

func loadConfigFile(k *koanf.Koanf, path string, optional bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && optional {
		return nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("config: unsupported file type %q", ext)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}
