package gen

// AccessorID identifies a column-declaring function of Exposed.
type AccessorID uint8

// Accessor identifiers.
const (
	AccessorInvalid AccessorID = iota
	AccessorByte
	AccessorShort
	AccessorInteger
	AccessorLong
	AccessorFloat
	AccessorDouble
	AccessorDecimal
	AccessorBool
	AccessorVarchar
	AccessorChar
	AccessorText
	AccessorBlob
	AccessorBinary
	AccessorUUID
	AccessorDate
	AccessorDateTime
	AccessorEnum
	AccessorReference
	AccessorCustom
)

// Params is the set of arguments an accessor takes after the column name.
type Params uint8

// Accessor parameters.
const (
	// ParamLength is a required length.
	ParamLength Params = 1 << iota
	// ParamOptionalLength is a length passed only when known.
	ParamOptionalLength
	// ParamPrecision is a precision followed by a scale.
	ParamPrecision
	// ParamCollate is an optional collation.
	ParamCollate
	// ParamTarget is the referenced table object.
	ParamTarget
	// ParamEnum is the enum declaration and its two conversion lambdas.
	ParamEnum
)

// Accessor describes a function that declares a column.
type Accessor struct {
	ID   AccessorID
	Name string
	// Package is set for extension functions that need an import.
	// Members of Table leave it empty.
	Package string
	Params  Params
}

// Has reports whether the accessor takes the parameter.
func (a Accessor) Has(p Params) bool { return a.Params&p != 0 }

// IsZero reports whether a is the zero accessor.
func (a Accessor) IsZero() bool { return a.ID == AccessorInvalid }

// Symbol returns the function symbol.
func (a Accessor) Symbol() Symbol { return Symbol{Package: a.Package, Name: a.Name} }

// Imports returns the symbols a call to the accessor needs.
func (a Accessor) Imports() []Symbol {
	if a.Package == "" {
		return nil
	}
	return []Symbol{a.Symbol()}
}

// Arity returns the maximum number of arguments including the column name.
func (a Accessor) Arity() int {
	n := 1
	if a.Has(ParamLength) || a.Has(ParamOptionalLength) {
		n++
	}
	if a.Has(ParamPrecision) {
		n += 2
	}
	if a.Has(ParamCollate) {
		n++
	}
	if a.Has(ParamTarget) {
		n++
	}
	if a.Has(ParamEnum) {
		n += 3
	}
	return n
}

// String returns the qualified accessor name.
func (a Accessor) String() string { return a.Symbol().Qualified() }

// accessors is the registry of Table member accessors. Date and time
// accessors depend on the provider and live in DateTimeProvider; custom
// accessors come from the configuration.
var accessors = [...]Accessor{
	AccessorByte:      {ID: AccessorByte, Name: "byte"},
	AccessorShort:     {ID: AccessorShort, Name: "short"},
	AccessorInteger:   {ID: AccessorInteger, Name: "integer"},
	AccessorLong:      {ID: AccessorLong, Name: "long"},
	AccessorFloat:     {ID: AccessorFloat, Name: "float"},
	AccessorDouble:    {ID: AccessorDouble, Name: "double"},
	AccessorDecimal:   {ID: AccessorDecimal, Name: "decimal", Params: ParamPrecision},
	AccessorBool:      {ID: AccessorBool, Name: "bool"},
	AccessorVarchar:   {ID: AccessorVarchar, Name: "varchar", Params: ParamLength | ParamCollate},
	AccessorChar:      {ID: AccessorChar, Name: "char", Params: ParamLength | ParamCollate},
	AccessorText:      {ID: AccessorText, Name: "text", Params: ParamCollate},
	AccessorBlob:      {ID: AccessorBlob, Name: "blob"},
	AccessorBinary:    {ID: AccessorBinary, Name: "binary", Params: ParamOptionalLength},
	AccessorUUID:      {ID: AccessorUUID, Name: "uuid"},
	AccessorEnum:      {ID: AccessorEnum, Name: "customEnumeration", Params: ParamEnum},
	AccessorReference: {ID: AccessorReference, Name: "reference", Params: ParamTarget},
}

// LookupAccessor returns the registered accessor for id. Provider-specific
// accessors are resolved through p, which may be nil.
func LookupAccessor(id AccessorID, p *DateTimeProvider) (Accessor, bool) {
	if p != nil {
		if a, ok := p.Accessor(id); ok {
			return a, true
		}
	}
	if int(id) < len(accessors) && !accessors[id].IsZero() {
		return accessors[id], true
	}
	return Accessor{}, false
}

// CustomAccessor returns the accessor of a package-qualified function name.
func CustomAccessor(function string) Accessor {
	sym := ParseSymbol(function)
	return Accessor{ID: AccessorCustom, Name: sym.Name, Package: sym.Package}
}

// Kind is the resolved value kind of a column.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindDecimal
	KindBool
	KindString
	KindBlob
	KindBytes
	KindUUID
	KindDate
	KindDateTime
	KindEnum
	KindCustom
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindByte:     "byte",
	KindShort:    "short",
	KindInt:      "int",
	KindLong:     "long",
	KindFloat:    "float",
	KindDouble:   "double",
	KindDecimal:  "decimal",
	KindBool:     "bool",
	KindString:   "string",
	KindBlob:     "blob",
	KindBytes:    "bytes",
	KindUUID:     "uuid",
	KindDate:     "date",
	KindDateTime: "datetime",
	KindEnum:     "enum",
	KindCustom:   "custom",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

var kindTypes = [...]TypeRef{
	KindByte:    TypeByte,
	KindShort:   TypeShort,
	KindInt:     TypeInt,
	KindLong:    TypeLong,
	KindFloat:   TypeFloat,
	KindDouble:  TypeDouble,
	KindDecimal: TypeBigDecimal,
	KindBool:    TypeBoolean,
	KindString:  TypeString,
	KindBlob:    TypeBlob,
	KindBytes:   TypeByteArray,
	KindUUID:    TypeUUID,
}

// TypeOf returns the Kotlin type of built-in kinds. Date kinds resolve
// through the provider; enum and custom kinds have no fixed type.
func TypeOf(k Kind, p *DateTimeProvider) (TypeRef, bool) {
	switch {
	case k == KindDate && p != nil:
		return p.Date, true
	case k == KindDateTime && p != nil:
		return p.DateTime, true
	case int(k) < len(kindTypes) && !kindTypes[k].IsZero():
		return kindTypes[k], true
	default:
		return TypeRef{}, false
	}
}
