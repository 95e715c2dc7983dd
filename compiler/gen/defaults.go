package gen

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DefaultLiteral renders the vendor default of the column as a Kotlin
// expression for Column.default. It returns "" and true when there is
// nothing to render, and false when the default is not a literal of the
// column type.
func DefaultLiteral(c *ColumnInfo) (string, bool) {
	if c.Default == nil {
		return "", true
	}
	raw := trimDefault(*c.Default)
	if raw == "" || strings.EqualFold(raw, "null") {
		return "", true
	}
	if c.Reference != nil {
		return "", false
	}
	s, quoted := unquote(raw)
	switch c.Kind {
	case KindString:
		if !quoted {
			return "", false
		}
		return kotlinString(s), true
	case KindBool:
		switch strings.ToLower(s) {
		case "true", "t", "1", "yes", "y", "on", "b'1'":
			return "true", true
		case "false", "f", "0", "no", "n", "off", "b'0'":
			return "false", true
		}
	case KindByte, KindShort, KindInt, KindLong:
		return integerLiteral(c.Kind, strings.TrimPrefix(s, "+"))
	case KindFloat, KindDouble:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return "", false
		}
		lit := strings.TrimPrefix(s, "+")
		if !strings.ContainsAny(lit, ".eE") {
			lit += ".0"
		}
		if c.Kind == KindFloat {
			lit += "f"
		}
		return lit, true
	case KindDecimal:
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return "", false
		}
		return "BigDecimal(" + kotlinString(strings.TrimPrefix(s, "+")) + ")", true
	case KindUUID:
		u, err := uuid.Parse(s)
		if err != nil {
			return "", false
		}
		return "UUID.fromString(" + kotlinString(u.String()) + ")", true
	}
	return "", false
}

func integerLiteral(k Kind, s string) (string, bool) {
	bits := map[Kind]int{KindByte: 8, KindShort: 16, KindInt: 32, KindLong: 64}[k]
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return "", false
	}
	lit := strconv.FormatInt(n, 10)
	switch k {
	case KindLong:
		return lit + "L", true
	case KindInt:
		return lit, true
	}
	if n < 0 {
		lit = "(" + lit + ")"
	}
	if k == KindByte {
		return lit + ".toByte()", true
	}
	return lit + ".toShort()", true
}

// trimDefault strips enclosing parentheses and a trailing type cast, as
// reported by SQLite ("(0)") and PostgreSQL ("'a'::text").
func trimDefault(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if i := strings.LastIndex(s, "::"); i > 0 && !strings.Contains(s[i:], "'") {
		s = strings.TrimSpace(s[:i])
		for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// unquote removes SQL single quotes, folding doubled quotes.
func unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return s, false
	}
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'"), true
}

var kotlinEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// kotlinString returns s as a Kotlin string literal.
func kotlinString(s string) string {
	return `"` + kotlinEscaper.Replace(s) + `"`
}
