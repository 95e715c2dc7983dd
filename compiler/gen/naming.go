package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// toLower lower-cases s with Unicode rules. Casers keep state, so each
// call gets its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// PropertyName returns the Kotlin property name for a raw column name.
//
//	PropertyName("USER_ACCOUNT") // userAccount
//	PropertyName("ALLCAPS")      // allcaps
//	PropertyName("MixedCase")    // mixedCase
func PropertyName(column string) string {
	switch {
	case strings.ContainsRune(column, '_'):
		return camel(column, false)
	case allUpper(column):
		return toLower(column)
	default:
		return mapFirst(column, unicode.ToLower)
	}
}

// ColumnName returns the column name used on the wire.
func ColumnName(column string) string {
	return toLower(column)
}

// TypeName returns the declared object name for a raw table name.
//
//	TypeName("USER_ACCOUNT") // UserAccount
//	TypeName("ALLCAPS")      // Allcaps
//	TypeName("mixedCase")    // MixedCase
func TypeName(table string) string {
	switch {
	case strings.ContainsRune(table, '_'):
		return camel(table, true)
	case allUpper(table):
		return mapFirst(toLower(table), unicode.ToTitle)
	default:
		return mapFirst(table, unicode.ToTitle)
	}
}

// TableName returns the table name used on the wire.
func TableName(table string) string {
	return toLower(table)
}

// ConfigName returns the "table.column" key of a column, lower-cased.
func ConfigName(table, column string) string {
	return toLower(table + "." + column)
}

// EntityName returns the DAO entity class name for a raw table name. It is
// the singular form of the object name, suffixed with "Entity" when the two
// would collide.
func EntityName(table string) string {
	object := TypeName(table)
	name := inflect.Singularize(object)
	if name == "" || name == object {
		return object + "Entity"
	}
	return name
}

// camel converts s to camel case on '_' and ' ' boundaries. The input is
// lower-cased first, so "USER_ACCOUNT" and "user_account" agree.
func camel(s string, capitalizeFirst bool) string {
	if s == "" {
		return s
	}
	var (
		b    strings.Builder
		next = capitalizeFirst
	)
	b.Grow(len(s))
	for _, r := range toLower(s) {
		switch {
		case r == '_' || r == ' ':
			next = b.Len() != 0
		case next:
			b.WriteRune(unicode.ToTitle(r))
			next = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func mapFirst(s string, f func(rune) rune) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(f(r)) + s[n:]
}
