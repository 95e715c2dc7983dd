package gen

// entityDecl returns the DAO entity class of an identity table, or nil
// for tables without one.
//
//	class User(id: EntityID<Int>) : IntEntity(id) {
//	    companion object : IntEntityClass<User>(Users)
//	    var name by Users.name
//	}
func (g *Graph) entityDecl(t *TableInfo) *Decl {
	if !t.HasEntity() {
		return nil
	}
	name := t.EntityName
	self := TypeRef{Symbol: Symbol{Package: g.Package, Name: name}}
	var super, class TypeRef
	switch t.Supertype {
	case IntIdTable:
		super, class = TypeIntEntity, TypeIntEntityClass.Of(self)
	case LongIdTable:
		super, class = TypeLongEntity, TypeLongEntityClass.Of(self)
	case UUIDTable:
		super, class = TypeUUIDEntity, TypeUUIDEntityClass.Of(self)
	case GenericIdTable:
		super, class = TypeEntity.Of(t.ID.Type), TypeEntityClass.Of(t.ID.Type, self)
	default:
		return nil
	}
	d := &Decl{
		Kind:      Class,
		Name:      name,
		Params:    []Param{{Name: "id", Type: TypeEntityID.Of(t.ID.Type)}},
		Super:     super,
		SuperArgs: []string{"id"},
		Companion: &Decl{
			Kind:      CompanionObject,
			Super:     class,
			SuperArgs: []string{t.TypeName},
		},
	}
	for _, c := range t.Columns {
		d.Props = append(d.Props, g.entityProperty(t, c))
	}
	return d
}

// entityProperty delegates to the table column, or to the referenced
// entity for references.
func (g *Graph) entityProperty(t *TableInfo, c *ColumnInfo) *Property {
	p := &Property{
		Name:     c.PropertyName,
		Mutable:  true,
		Delegate: true,
		Init:     t.TypeName + "." + c.PropertyName,
	}
	if r := c.Reference; r != nil {
		if target := g.Table(r.Table); target != nil && target.HasEntity() {
			op := " referencedOn "
			if c.Nullable {
				op = " optionalReferencedOn "
			}
			p.Init = target.EntityName + op + p.Init
		}
	}
	return p
}

func entityKind(s Supertype) bool {
	return s >= IntIdTable && s <= GenericIdTable
}
