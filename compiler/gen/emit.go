package gen

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// File is a generated unit: one Kotlin source file.
type File struct {
	// Name is the file name without extension.
	Name string
	// Package is the Kotlin package.
	Package string
	// Header is the comment placed above the package clause.
	Header string
	// Decls holds the declarations in output order.
	Decls []*Decl
}

// Path returns the slash-separated path of the file relative to the
// output directory.
func (f *File) Path() string {
	name := f.Name + ".kt"
	if f.Package == "" {
		return name
	}
	return strings.ReplaceAll(f.Package, ".", "/") + "/" + name
}

// Symbols returns every symbol the declarations of the file mention.
func (f *File) Symbols() []Symbol {
	var syms []Symbol
	for _, d := range f.Decls {
		syms = append(syms, d.Symbols()...)
	}
	return syms
}

// DeclKind is the Kotlin declaration keyword.
type DeclKind uint8

// Declaration kinds.
const (
	Object DeclKind = iota
	Class
	CompanionObject
)

// String returns the declaration keyword.
func (k DeclKind) String() string {
	switch k {
	case Class:
		return "class"
	case CompanionObject:
		return "companion object"
	default:
		return "object"
	}
}

// Decl is a type declaration.
type Decl struct {
	Kind DeclKind
	// Name is empty for companion objects.
	Name string
	// Params are the primary constructor parameters.
	Params []Param
	// Super is the supertype, and SuperArgs the arguments passed to its
	// constructor.
	Super     TypeRef
	SuperArgs []string
	// Companion is the companion object of a class.
	Companion *Decl
	// Props in output order.
	Props []*Property
}

// Symbols returns the symbols the declaration mentions.
func (d *Decl) Symbols() []Symbol {
	syms := d.Super.Symbols()
	for _, p := range d.Params {
		syms = append(syms, p.Type.Symbols()...)
	}
	if d.Companion != nil {
		syms = append(syms, d.Companion.Symbols()...)
	}
	for _, p := range d.Props {
		syms = append(syms, p.Type.Symbols()...)
		syms = append(syms, p.Imports...)
	}
	return syms
}

// Param is a constructor parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Property is a property declaration.
type Property struct {
	Name string
	// Type is omitted from the output when zero.
	Type TypeRef
	// Init is the initializer, or the delegate expression when Delegate
	// is set.
	Init     string
	Override bool
	Mutable  bool
	Delegate bool
	// Imports lists the symbols Init needs.
	Imports []Symbol
}

// Emit turns the graph into units according to the configured layout.
// The single-file layout always yields one unit, possibly without
// declarations.
func Emit(g *Graph) []*File {
	switch g.Layout {
	case PerTable:
		return lo.Map(g.Tables, func(t *TableInfo, _ int) *File {
			name := t.Table.Name
			if g.UseFullNames {
				name = t.TypeName
			}
			return &File{
				Name:    name,
				Package: g.Package,
				Header:  g.Header,
				Decls:   g.decls(t),
			}
		})
	default:
		f := &File{Name: g.FileName, Package: g.Package, Header: g.Header}
		for _, t := range g.Tables {
			f.Decls = append(f.Decls, g.decls(t)...)
		}
		return []*File{f}
	}
}

// decls returns the table object followed by its entity class in DAO mode.
func (g *Graph) decls(t *TableInfo) []*Decl {
	decls := []*Decl{g.tableDecl(t)}
	if g.UseDao {
		if e := g.entityDecl(t); e != nil {
			decls = append(decls, e)
		}
	}
	return decls
}

func (g *Graph) tableDecl(t *TableInfo) *Decl {
	d := &Decl{
		Kind:      Object,
		Name:      t.TypeName,
		Super:     t.SuperType(),
		SuperArgs: []string{kotlinString(t.TableName)},
	}
	switch t.Supertype {
	case IntIdTable, LongIdTable, UUIDTable:
		d.SuperArgs = append(d.SuperArgs, kotlinString(t.ID.ColumnName))
	case GenericIdTable:
		id := *t.ID
		id.Nullable, id.AutoIncrement, id.Default, id.DefaultOverride = false, false, nil, ""
		d.Props = append(d.Props,
			&Property{
				Name:     "id",
				Type:     TypeColumn.Of(TypeEntityID.Of(id.Type)),
				Init:     initializer(&id, false) + ".entityId()",
				Override: true,
				Imports:  id.Accessor.Imports(),
			},
			&Property{
				Name:     "primaryKey",
				Init:     "PrimaryKey(id)",
				Override: true,
			},
		)
	}
	for _, c := range t.Columns {
		d.Props = append(d.Props, columnProperty(c))
	}
	if t.Supertype == PlainTable && len(t.Table.PrimaryKey) > 0 {
		if pk := g.primaryKey(t); pk != nil {
			d.Props = append(d.Props, pk)
		}
	}
	return d
}

// primaryKey returns the primaryKey override of a plain table, or nil when
// a key column was not generated.
func (g *Graph) primaryKey(t *TableInfo) *Property {
	names := make([]string, 0, len(t.Table.PrimaryKey))
	for _, col := range t.Table.PrimaryKeyColumns() {
		c, ok := lo.Find(t.Columns, func(c *ColumnInfo) bool { return c.Column == col })
		if !ok {
			return nil
		}
		names = append(names, c.PropertyName)
	}
	if len(names) != len(t.Table.PrimaryKey) {
		return nil
	}
	return &Property{
		Name:     "primaryKey",
		Init:     "PrimaryKey(" + strings.Join(names, ", ") + ")",
		Override: true,
	}
}

func columnProperty(c *ColumnInfo) *Property {
	p := &Property{
		Name:    c.PropertyName,
		Type:    c.PropertyType(),
		Init:    initializer(c, true),
		Imports: c.Accessor.Imports(),
	}
	if e := c.Enum; e != nil && e.PgEnumClass != "" {
		p.Imports = append(p.Imports, ParseSymbol(e.PgEnumClass))
	}
	return p
}

// initializer renders the accessor call of a column followed by its
// modifiers. autoIncrement controls whether auto-increment columns are
// marked.
func initializer(c *ColumnInfo, autoIncrement bool) string {
	var b strings.Builder
	b.WriteString(call(c))
	if autoIncrement && c.AutoIncrement && c.Reference == nil {
		b.WriteString(".autoIncrement()")
	}
	if c.Nullable {
		b.WriteString(".nullable()")
	}
	switch {
	case c.DefaultOverride != "":
		b.WriteString(c.DefaultOverride)
	case c.Default != nil:
		if lit, ok := DefaultLiteral(c); ok && lit != "" {
			b.WriteString(".default(" + lit + ")")
		}
	}
	return b.String()
}

// call renders the accessor call, e.g. varchar("name", 255).
func call(c *ColumnInfo) string {
	a := c.Accessor
	args := []string{kotlinString(c.ColumnName)}
	if (a.Has(ParamLength) || a.Has(ParamOptionalLength)) && c.Length != nil {
		args = append(args, strconv.Itoa(*c.Length))
	}
	if a.Has(ParamPrecision) && c.Precision != nil && c.Scale != nil {
		args = append(args, strconv.Itoa(*c.Precision), strconv.Itoa(*c.Scale))
	}
	if a.Has(ParamCollate) && c.Collate != "" {
		args = append(args, "collate = "+kotlinString(c.Collate))
	}
	if a.Has(ParamTarget) && c.Reference != nil {
		args = append(args, c.Reference.Object)
	}
	if a.Has(ParamEnum) && c.Enum != nil {
		args = append(args, enumArgs(c)...)
	}
	name := a.Name
	if c.Typed {
		name += "<" + c.Type.String() + ">"
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

// enumArgs renders the SQL declaration and conversion lambdas of
// customEnumeration.
func enumArgs(c *ColumnInfo) []string {
	e := c.Enum
	decl := "null"
	if e.Declaration != "" {
		decl = kotlinString(e.Declaration)
	}
	fromDB := "{ value -> " + c.Type.Name + ".valueOf(value as String) }"
	toDB := "{ it.name }"
	if e.PgEnumClass != "" {
		typeName := e.Declaration
		if typeName == "" {
			typeName = vendorName(c.Column.Type)
		}
		toDB = "{ " + ParseSymbol(e.PgEnumClass).Name + "(" + kotlinString(typeName) + ", it) }"
	}
	return []string{decl, fromDB, toDB}
}
