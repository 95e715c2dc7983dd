package gen

import (
	"github.com/syssam/exposedgen/catalog"
)

// Supertype is the base declaration a table object extends.
type Supertype uint8

// Supertypes. The zero value marks an identity key whose type could not
// be resolved; Classify never returns it.
const (
	undetermined Supertype = iota
	PlainTable
	IntIdTable
	LongIdTable
	UUIDTable
	GenericIdTable
	UserOverride
)

var supertypeNames = [...]string{
	undetermined:   "undetermined",
	PlainTable:     "Table",
	IntIdTable:     "IntIdTable",
	LongIdTable:    "LongIdTable",
	UUIDTable:      "UUIDTable",
	GenericIdTable: "IdTable",
	UserOverride:   "override",
}

// String returns the Exposed class name of the supertype.
func (s Supertype) String() string {
	if int(s) < len(supertypeNames) {
		return supertypeNames[s]
	}
	return "invalid"
}

// Identity reports whether the supertype carries the primary key as its
// id column.
func (s Supertype) Identity() bool {
	return s >= IntIdTable && s <= UserOverride
}

// TableInfo is the classification decision for one table.
type TableInfo struct {
	// Table is the catalog table.
	Table *catalog.Table
	// TypeName is the declared object name.
	TypeName string
	// TableName is the table name used on the wire.
	TableName string
	// Supertype is the base declaration of the object.
	Supertype Supertype
	// Override is the user-supplied supertype class of UserOverride.
	Override string
	// IDColumn is the identity column. It is nil for plain tables.
	IDColumn *catalog.Column
	// ID is the mapping of IDColumn. It is nil when the column is
	// unmappable.
	ID *ColumnInfo
	// Columns holds the mapped columns in catalog order, identity column
	// excluded. The graph fills it.
	Columns []*ColumnInfo
	// EntityName is the DAO entity class name. The graph sets it in DAO
	// mode for tables that have an entity.
	EntityName string
}

// HasEntity reports whether the table gets a DAO entity class.
func (t *TableInfo) HasEntity() bool {
	return t.ID != nil && entityKind(t.Supertype)
}

// SuperType returns the type reference of the supertype.
func (t *TableInfo) SuperType() TypeRef {
	switch t.Supertype {
	case IntIdTable:
		return TypeIntIdTable
	case LongIdTable:
		return TypeLongIdTable
	case UUIDTable:
		return TypeUUIDTable
	case GenericIdTable:
		return TypeIdTable.Of(t.ID.Type)
	case UserOverride:
		return Ref(t.Override)
	default:
		return TypeTable
	}
}

// Classify decides the supertype of the table from the shape and mapping
// of its primary key. A single key bound to a custom or enum mapping, or
// one that is unmappable, leaves the supertype open: the table then uses
// the custom mapping's id table class, or PlainTable when none is set.
// For an unmappable key the returned error describes why.
func (m *Mapper) Classify(t *catalog.Table) (*TableInfo, error) {
	info := &TableInfo{
		Table:     t,
		TypeName:  TypeName(t.Name),
		TableName: TableName(t.Name),
		Supertype: PlainTable,
	}
	keys := t.PrimaryKeyColumns()
	if len(keys) != 1 {
		return info, nil
	}
	key := keys[0]
	id, err := m.mapColumn(key, false)
	switch {
	case err != nil, id.Kind == KindCustom, id.Kind == KindEnum:
		info.Supertype = undetermined
	case (id.Kind == KindInt || id.Kind == KindLong) && !key.AutoIncrement:
		// Assigned numeric keys stay plain columns.
		return info, nil
	case id.Kind == KindInt:
		info.Supertype = IntIdTable
	case id.Kind == KindLong:
		info.Supertype = LongIdTable
	case id.Kind == KindUUID:
		info.Supertype = UUIDTable
	default:
		info.Supertype = GenericIdTable
	}
	info.IDColumn, info.ID = key, id
	if info.Supertype == undetermined {
		info.Supertype = PlainTable
		info.IDColumn, info.ID = nil, nil
		if cm, ok := m.cfg.CustomMapping(key.Name); ok && cm.IDTableClass != "" {
			info.Supertype, info.Override, info.IDColumn = UserOverride, cm.IDTableClass, key
		}
	}
	return info, err
}
