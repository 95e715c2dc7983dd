package gen

import (
	"strings"
)

// DiagnosticKind classifies a non-fatal finding of a generation run.
type DiagnosticKind uint8

// Diagnostic kinds.
const (
	// UnmappableColumn is a column no rule could map. It is omitted.
	UnmappableColumn DiagnosticKind = iota + 1
	// UnmappablePrimaryKey is a key column no rule could map. The table
	// falls back to a plain or user-supplied supertype.
	UnmappablePrimaryKey
	// InvalidMapping is a custom or enum entry missing a required field.
	// The entry is ignored and the column omitted.
	InvalidMapping
	// UnsupportedDefault is a default expression that could not be
	// rendered for the column type. The default is dropped.
	UnsupportedDefault
	// UnresolvedReference is a foreign key that could not become a DAO
	// reference. The column keeps its scalar accessor.
	UnresolvedReference
)

var diagnosticNames = [...]string{
	UnmappableColumn:     "unmappable column",
	UnmappablePrimaryKey: "unmappable primary key",
	InvalidMapping:       "invalid mapping",
	UnsupportedDefault:   "unsupported default",
	UnresolvedReference:  "unresolved reference",
}

// String returns the human-readable kind.
func (k DiagnosticKind) String() string {
	if int(k) < len(diagnosticNames) && diagnosticNames[k] != "" {
		return diagnosticNames[k]
	}
	return "unknown"
}

// Diagnostic is a non-fatal record of something the run could not
// generate as requested.
type Diagnostic struct {
	Kind    DiagnosticKind
	Table   string
	Column  string
	Message string
	Cause   error
}

// String formats the diagnostic as "table.column: kind: message".
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Table)
	if d.Column != "" {
		b.WriteByte('.')
		b.WriteString(d.Column)
	}
	b.WriteString(": ")
	b.WriteString(d.Kind.String())
	if d.Message != "" {
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	return b.String()
}
