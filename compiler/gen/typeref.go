package gen

import (
	"strings"
)

// Symbol is a package-qualified Kotlin name.
type Symbol struct {
	Package string
	Name    string
}

// Qualified returns the fully-qualified name of the symbol.
func (s Symbol) Qualified() string {
	if s.Package == "" {
		return s.Name
	}
	return s.Package + "." + s.Name
}

// ParseSymbol splits a fully-qualified name on its last dot.
func ParseSymbol(qualified string) Symbol {
	i := strings.LastIndexByte(qualified, '.')
	if i < 0 {
		return Symbol{Name: qualified}
	}
	return Symbol{Package: qualified[:i], Name: qualified[i+1:]}
}

// TypeRef is a reference to a Kotlin type, possibly parameterized.
type TypeRef struct {
	Symbol
	Args     []TypeRef
	Nullable bool
}

// Ref returns a reference to the type with the given qualified name.
func Ref(qualified string) TypeRef {
	return TypeRef{Symbol: ParseSymbol(qualified)}
}

// Of returns a copy of t parameterized with args.
func (t TypeRef) Of(args ...TypeRef) TypeRef {
	t.Args = args
	return t
}

// OrNull returns a copy of t with the given nullability.
func (t TypeRef) OrNull(nullable bool) TypeRef {
	t.Nullable = nullable
	return t
}

// IsZero reports whether t references nothing.
func (t TypeRef) IsZero() bool { return t.Name == "" }

// String renders the type with simple names, e.g. "Column<EntityID<Int>?>".
func (t TypeRef) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t TypeRef) write(b *strings.Builder) {
	b.WriteString(t.Name)
	if len(t.Args) > 0 {
		b.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.write(b)
		}
		b.WriteByte('>')
	}
	if t.Nullable {
		b.WriteByte('?')
	}
}

// Symbols returns every symbol the type mentions, outermost first.
func (t TypeRef) Symbols() []Symbol {
	if t.IsZero() {
		return nil
	}
	syms := []Symbol{t.Symbol}
	for _, a := range t.Args {
		syms = append(syms, a.Symbols()...)
	}
	return syms
}

// Kotlin and Exposed types referenced by the generator.
var (
	TypeByte      = Ref("kotlin.Byte")
	TypeShort     = Ref("kotlin.Short")
	TypeInt       = Ref("kotlin.Int")
	TypeLong      = Ref("kotlin.Long")
	TypeFloat     = Ref("kotlin.Float")
	TypeDouble    = Ref("kotlin.Double")
	TypeBoolean   = Ref("kotlin.Boolean")
	TypeString    = Ref("kotlin.String")
	TypeByteArray = Ref("kotlin.ByteArray")
	TypeAny       = Ref("kotlin.Any")

	TypeBigDecimal = Ref("java.math.BigDecimal")
	TypeUUID       = Ref("java.util.UUID")

	TypeColumn      = Ref("org.jetbrains.exposed.sql.Column")
	TypeTable       = Ref("org.jetbrains.exposed.sql.Table")
	TypeBlob        = Ref("org.jetbrains.exposed.sql.statements.api.ExposedBlob")
	TypeEntityID    = Ref("org.jetbrains.exposed.dao.id.EntityID")
	TypeIdTable     = Ref("org.jetbrains.exposed.dao.id.IdTable")
	TypeIntIdTable  = Ref("org.jetbrains.exposed.dao.id.IntIdTable")
	TypeLongIdTable = Ref("org.jetbrains.exposed.dao.id.LongIdTable")
	TypeUUIDTable   = Ref("org.jetbrains.exposed.dao.id.UUIDTable")

	TypeEntity          = Ref("org.jetbrains.exposed.dao.Entity")
	TypeEntityClass     = Ref("org.jetbrains.exposed.dao.EntityClass")
	TypeIntEntity       = Ref("org.jetbrains.exposed.dao.IntEntity")
	TypeIntEntityClass  = Ref("org.jetbrains.exposed.dao.IntEntityClass")
	TypeLongEntity      = Ref("org.jetbrains.exposed.dao.LongEntity")
	TypeLongEntityClass = Ref("org.jetbrains.exposed.dao.LongEntityClass")
	TypeUUIDEntity      = Ref("org.jetbrains.exposed.dao.UUIDEntity")
	TypeUUIDEntityClass = Ref("org.jetbrains.exposed.dao.UUIDEntityClass")
)
