package gen

import (
	"slices"
	"strings"

	"github.com/syssam/exposedgen/catalog"
)

// Default arguments of sized accessors when the catalog reports no size.
const (
	DefaultVarcharLength    = 255
	DefaultCharLength       = 1
	DefaultDecimalPrecision = 10
	DefaultDecimalScale     = 2
)

// ColumnInfo is the mapping decision for one column.
type ColumnInfo struct {
	// Column is the catalog column the decision was made for.
	Column *catalog.Column
	// PropertyName is the Kotlin property name.
	PropertyName string
	// ColumnName is the column name used on the wire.
	ColumnName string
	// Kind is the resolved value kind.
	Kind Kind
	// Type is the non-null Kotlin type of the value.
	Type TypeRef
	// Accessor declares the column.
	Accessor Accessor
	// Nullable holds for nullable columns outside the primary key.
	Nullable bool
	// AutoIncrement is copied from the column.
	AutoIncrement bool
	// Length, Precision and Scale are the size arguments of the accessor.
	Length    *int
	Precision *int
	Scale     *int
	// Collate is the collation passed to string accessors.
	Collate string
	// Enum is the enum binding of enum-mapped columns.
	Enum *EnumMapping
	// Custom holds when a custom or enum mapping took precedence.
	Custom bool
	// Typed holds when a custom accessor takes the type as a type argument.
	Typed bool
	// Reference is the foreign-key target in DAO mode.
	Reference *Reference
	// Default is the raw vendor default.
	Default *string
	// DefaultOverride replaces the default with an initializer suffix.
	DefaultOverride string
}

// Reference is a resolved foreign-key target of a reference accessor.
type Reference struct {
	// Table and Column are the raw names of the target.
	Table  string
	Column string
	// Object is the declared object name of the target table.
	Object string
	// Target is the referenced column, nil when the catalog lacks it.
	Target *catalog.Column
}

// ValueType returns the type of the column value: the resolved type, or an
// EntityID of it for references, marked nullable when the column is.
func (c *ColumnInfo) ValueType() TypeRef {
	t := c.Type
	if c.Reference != nil {
		t = TypeEntityID.Of(t)
	}
	return t.OrNull(c.Nullable)
}

// PropertyType returns the declared type of the table property.
func (c *ColumnInfo) PropertyType() TypeRef {
	return TypeColumn.Of(c.ValueType())
}

// binding is the outcome of one resolver.
type binding struct {
	kind     Kind
	typ      TypeRef
	accessor Accessor
	custom   bool
	typed    bool
	enum     *EnumMapping
}

// resolver returns a binding, nil when it does not apply, or an error when
// the column cannot be mapped at all.
type resolver func(*Mapper, *catalog.Column) (*binding, error)

// resolvers run in priority order; the first binding wins.
var resolvers = []resolver{
	resolveCustom,
	resolveEnum,
	resolveBuiltin,
}

// Mapper maps catalog columns to column decisions.
type Mapper struct {
	cfg     *Config
	catalog *catalog.Catalog
	// accept decides whether a DAO reference may replace the scalar
	// accessor. A nil accept admits every reference.
	accept func(*Reference) bool
}

// NewMapper returns a mapper for the config. The catalog resolves
// foreign-key targets and may be nil.
func NewMapper(cfg *Config, cat *catalog.Catalog) *Mapper {
	return &Mapper{cfg: cfg, catalog: cat}
}

// Map resolves the column. It returns a *MappingError when no rule
// resolves the column or when the entry that matched it is invalid.
func (m *Mapper) Map(col *catalog.Column) (*ColumnInfo, error) {
	return m.mapColumn(col, true)
}

func (m *Mapper) mapColumn(col *catalog.Column, references bool) (*ColumnInfo, error) {
	b, err := m.resolve(col)
	if err != nil {
		return nil, err
	}
	info := m.info(col, b)
	if references && m.cfg.UseDao && col.References != nil {
		m.reference(info)
	}
	if d := col.Default; d != nil {
		if repl, ok := m.cfg.DefaultExpressions[*d]; ok {
			info.DefaultOverride = repl
		} else {
			info.Default = d
		}
	}
	return info, nil
}

func (m *Mapper) resolve(col *catalog.Column) (*binding, error) {
	for _, r := range resolvers {
		b, err := r(m, col)
		if err != nil {
			return nil, err
		}
		if b != nil {
			return b, nil
		}
	}
	return nil, m.mappingError(col, "no mapping rule matches the type", nil)
}

func (m *Mapper) info(col *catalog.Column, b *binding) *ColumnInfo {
	info := &ColumnInfo{
		Column:        col,
		PropertyName:  PropertyName(col.Name),
		ColumnName:    ColumnName(col.Name),
		Kind:          b.kind,
		Type:          b.typ,
		Accessor:      b.accessor,
		Nullable:      col.Nullable && !col.PrimaryKey,
		AutoIncrement: col.AutoIncrement,
		Enum:          b.enum,
		Custom:        b.custom,
		Typed:         b.typed,
	}
	size, scale := col.Type.Size, col.Type.Scale
	switch a := info.Accessor; {
	case a.Has(ParamLength):
		n := DefaultVarcharLength
		if a.ID == AccessorChar {
			n = DefaultCharLength
		}
		if size != nil && *size > 0 {
			n = *size
		}
		info.Length = &n
	case a.Has(ParamOptionalLength):
		if size != nil && *size > 0 {
			info.Length = catalog.IntPtr(*size)
		}
	case a.Has(ParamPrecision):
		p, s := DefaultDecimalPrecision, DefaultDecimalScale
		if size != nil && *size > 0 {
			p, s = *size, 0
		}
		if scale != nil {
			s = *scale
		}
		info.Precision, info.Scale = &p, &s
	}
	if info.Accessor.Has(ParamCollate) {
		info.Collate = m.cfg.Collate
	}
	return info
}

// reference replaces the accessor of a foreign-key column with a reference
// to the target table. The value type becomes the type of the target column.
func (m *Mapper) reference(info *ColumnInfo) {
	ref := *info.Column.References
	r := &Reference{Table: ref.Table, Column: ref.Column, Object: TypeName(ref.Table)}
	if m.catalog != nil {
		r.Target = m.catalog.Lookup(ref)
	}
	if m.accept != nil && !m.accept(r) {
		return
	}
	if r.Target != nil {
		if r.Target.Table != nil {
			r.Object = TypeName(r.Target.Table.Name)
		}
		if b, err := m.resolve(r.Target); err == nil {
			info.Kind, info.Type = b.kind, b.typ
		}
	}
	info.Reference = r
	info.Accessor, _ = LookupAccessor(AccessorReference, nil)
	info.Length, info.Precision, info.Scale, info.Collate = nil, nil, nil, ""
	info.Enum, info.Custom, info.Typed = nil, false, false
}

func (m *Mapper) mappingError(col *catalog.Column, msg string, cause error) *MappingError {
	err := &MappingError{
		Column:  col.Name,
		Type:    col.Type.String(),
		Message: msg,
		Cause:   cause,
	}
	if col.Table != nil {
		err.Table = col.Table.FullName()
	}
	return err
}

// resolveCustom applies the custom mapping of the raw column name. Mappings
// that reuse an existing column do not bind.
func resolveCustom(m *Mapper, col *catalog.Column) (*binding, error) {
	cm, ok := m.cfg.CustomMapping(col.Name)
	if !ok || cm.ExistingColumn != "" {
		return nil, nil
	}
	switch {
	case cm.Function == "":
		return nil, m.mappingError(col, "invalid custom mapping", NewConfigError("CustomMappings", col.Name, "function is required"))
	case cm.Type == "":
		return nil, m.mappingError(col, "invalid custom mapping", NewConfigError("CustomMappings", col.Name, "type is required"))
	}
	return &binding{
		kind:     KindCustom,
		typ:      Ref(cm.Type),
		accessor: CustomAccessor(cm.Function),
		custom:   true,
		typed:    cm.Typed,
	}, nil
}

// resolveEnum binds enum-mapped vendor types.
func resolveEnum(m *Mapper, col *catalog.Column) (*binding, error) {
	em, ok := m.cfg.EnumMapping(vendorName(col.Type))
	if !ok {
		return nil, nil
	}
	if em.EnumClass == "" {
		return nil, m.mappingError(col, "invalid enum mapping", NewConfigError("EnumMappings", vendorName(col.Type), "enum class is required"))
	}
	a, _ := LookupAccessor(AccessorEnum, nil)
	return &binding{
		kind:     KindEnum,
		typ:      Ref(em.EnumClass),
		accessor: a,
		custom:   true,
		enum:     &em,
	}, nil
}

// resolveBuiltin runs the built-in rule table.
func resolveBuiltin(m *Mapper, col *catalog.Column) (*binding, error) {
	p := m.cfg.DateTime
	if p == nil {
		p = JavaTime
	}
	r, ok := lookupRule(col.Type, p)
	if !ok {
		return nil, nil
	}
	a, ok := LookupAccessor(r.accessor, p)
	if !ok {
		return nil, nil
	}
	t, ok := TypeOf(r.kind, p)
	if !ok {
		return nil, nil
	}
	return &binding{kind: r.kind, typ: t, accessor: a}, nil
}

// predicate matches a data type under a date-time provider.
type predicate func(catalog.DataType, *DateTimeProvider) bool

// typeRule is one row of the built-in dispatch table.
type typeRule struct {
	name     string
	when     predicate
	kind     Kind
	accessor AccessorID
}

// builtinRules is evaluated top to bottom. Vendor quirks are new rows.
var builtinRules = []typeRule{
	// Integral family, by vendor name.
	{"tinyint", named(catalog.NativeInteger, "tinyint"), KindByte, AccessorByte},
	{"smallint", named(catalog.NativeInteger, "smallint", "int2"), KindShort, AccessorShort},
	{"int8", named(catalog.NativeInteger, "int8"), KindLong, AccessorLong},
	{"integer", native(catalog.NativeInteger), KindInt, AccessorInteger},

	// Floating family.
	{"numeric", like(catalog.NativeDouble, "decimal", "numeric"), KindDecimal, AccessorDecimal},
	{"double", native(catalog.NativeDouble), KindDouble, AccessorDouble},

	// Textual family, by vendor name substring.
	{"varchar", like(catalog.NativeString, "varchar", "varying"), KindString, AccessorVarchar},
	{"char", like(catalog.NativeString, "char"), KindString, AccessorChar},
	{"text", like(catalog.NativeString, "text"), KindString, AccessorText},
	{"string time", like(catalog.NativeString, "time"), KindDateTime, AccessorDateTime},
	{"string date", like(catalog.NativeString, "date"), KindDate, AccessorDate},
	{"string binary", like(catalog.NativeString, "binary", "bytea"), KindBytes, AccessorBinary},
	{"single", like(catalog.NativeString, "single"), KindFloat, AccessorFloat},

	// Exact native matches.
	{"long", native(catalog.NativeLong), KindLong, AccessorLong},
	{"decimal", native(catalog.NativeDecimal), KindDecimal, AccessorDecimal},
	{"float", native(catalog.NativeFloat), KindFloat, AccessorFloat},
	{"boolean", native(catalog.NativeBoolean), KindBool, AccessorBool},
	{"clob", native(catalog.NativeClob), KindString, AccessorText},
	{"blob", native(catalog.NativeBlob), KindBlob, AccessorBlob},
	{"uuid", native(catalog.NativeUUID), KindUUID, AccessorUUID},
	{"date", mapped(catalog.NativeDate, func(p *DateTimeProvider) TypeRef { return p.Date }), KindDate, AccessorDate},
	{"timestamp", mapped(catalog.NativeTimestamp, func(p *DateTimeProvider) TypeRef { return p.DateTime }), KindDateTime, AccessorDateTime},

	// Fallback for types without a dedicated family.
	{"uuid name", unclassified("uuid"), KindUUID, AccessorUUID},
	{"binary name", unclassified("binary", "bytea"), KindBytes, AccessorBinary},
}

func lookupRule(t catalog.DataType, p *DateTimeProvider) (typeRule, bool) {
	for _, r := range builtinRules {
		if r.when(t, p) {
			return r, true
		}
	}
	return typeRule{}, false
}

// vendorName returns the lower-case vendor type name.
func vendorName(t catalog.DataType) string {
	if t.Name != "" {
		return toLower(t.Name)
	}
	return toLower(t.Raw)
}

func native(n catalog.NativeType) predicate {
	return func(t catalog.DataType, _ *DateTimeProvider) bool {
		return t.Native == n
	}
}

func named(n catalog.NativeType, names ...string) predicate {
	return func(t catalog.DataType, _ *DateTimeProvider) bool {
		return t.Native == n && slices.Contains(names, vendorName(t))
	}
}

func like(n catalog.NativeType, subs ...string) predicate {
	return func(t catalog.DataType, _ *DateTimeProvider) bool {
		return t.Native == n && containsAny(vendorName(t), subs)
	}
}

// mapped matches the native type, or a driver-mapped class equal to the
// provider's class for unclassified types.
func mapped(n catalog.NativeType, class func(*DateTimeProvider) TypeRef) predicate {
	return func(t catalog.DataType, p *DateTimeProvider) bool {
		if t.Native == n {
			return true
		}
		return t.Native == catalog.NativeOther && t.MappedClass != "" && t.MappedClass == class(p).Qualified()
	}
}

// classified lists the native types that have a family of their own. Their
// columns never reach the fallback rows.
var classified = []catalog.NativeType{
	catalog.NativeInteger,
	catalog.NativeLong,
	catalog.NativeDecimal,
	catalog.NativeFloat,
	catalog.NativeDouble,
	catalog.NativeBoolean,
	catalog.NativeString,
	catalog.NativeClob,
	catalog.NativeBlob,
	catalog.NativeUUID,
	catalog.NativeDate,
	catalog.NativeTimestamp,
}

func unclassified(subs ...string) predicate {
	return func(t catalog.DataType, _ *DateTimeProvider) bool {
		return !slices.Contains(classified, t.Native) && containsAny(vendorName(t), subs)
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
