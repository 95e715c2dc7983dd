package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidCatalog indicates an inconsistent catalog.
	ErrInvalidCatalog = errors.New("exposedgen: invalid catalog")
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("exposedgen: invalid configuration")
	// ErrUnmappable indicates a column that no mapping rule could resolve.
	ErrUnmappable = errors.New("exposedgen: unmappable column")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("exposedgen: code generation failed")
)

// CatalogError represents an inconsistency in the crawled catalog.
type CatalogError struct {
	Table   string
	Column  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	head := "exposedgen: catalog error"
	if e.Table != "" {
		head += " at " + qualify(e.Table, e.Column)
	}
	return chain(head, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for CatalogError.
func (e *CatalogError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(table, column, message string, cause error) *CatalogError {
	return &CatalogError{
		Table:   table,
		Column:  column,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("exposedgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("exposedgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// MappingError is returned by the column mapper when no rule resolves a
// column. It is an expected outcome: callers record it and move on.
type MappingError struct {
	Table   string
	Column  string
	Type    string
	Message string
	Cause   error
}

// Error implements the error interface. The column is named by its
// table-qualified key, the way mappings are configured.
func (e *MappingError) Error() string {
	head := "exposedgen: cannot map " + qualify(e.Table, e.Column)
	if e.Type != "" {
		head += " (" + e.Type + ")"
	}
	return chain(head, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *MappingError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for MappingError.
func (e *MappingError) Is(target error) bool {
	return target == ErrUnmappable
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "write", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	head := "exposedgen: generation error"
	if e.Phase != "" {
		head += " in phase " + e.Phase
	}
	if e.File != "" {
		head += " (file: " + e.File + ")"
	}
	return chain(head, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsCatalogError reports whether the error is a CatalogError.
func IsCatalogError(err error) bool {
	var catErr *CatalogError
	return errors.As(err, &catErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsMappingError reports whether the error is a MappingError.
func IsMappingError(err error) bool {
	var mapErr *MappingError
	return errors.As(err, &mapErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

func qualify(table, column string) string {
	switch {
	case table == "":
		return column
	case column == "":
		return table
	}
	return table + "." + column
}

// chain joins head with the non-empty message and cause.
func chain(head, message string, cause error) string {
	parts := []string{head}
	if message != "" {
		parts = append(parts, message)
	}
	if cause != nil {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, ": ")
}
