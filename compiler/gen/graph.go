package gen

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/syssam/exposedgen/catalog"
)

// Graph holds the mapping and classification decisions of every table
// that takes part in generation.
type Graph struct {
	*Config
	// Catalog is the catalog the graph was built from.
	Catalog *catalog.Catalog
	// Tables holds the table decisions in catalog order.
	Tables []*TableInfo
	// Diagnostics records everything that could not be generated as
	// requested, in the order it was found.
	Diagnostics []Diagnostic

	mapper *Mapper
	byName map[string]*TableInfo
}

// NewGraph maps and classifies the catalog. Ignored tables are removed
// before classification. Unmappable columns and keys are recorded as
// diagnostics; only an unusable config or catalog is an error.
func NewGraph(c *Config, cat *catalog.Catalog) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if cat == nil {
		return nil, NewCatalogError("", "", "catalog cannot be nil", nil)
	}
	g := &Graph{
		Config:  c,
		Catalog: cat,
		mapper:  NewMapper(c, cat),
		byName:  make(map[string]*TableInfo),
	}
	g.mapper.accept = g.acceptReference
	tables := lo.Reject(cat.Tables, func(t *catalog.Table, _ int) bool {
		return c.Ignored(t.Name)
	})
	declared := make(map[string]string, len(tables))
	for _, t := range tables {
		info, err := g.mapper.Classify(t)
		if prev, ok := declared[info.TypeName]; ok {
			return nil, NewCatalogError(t.FullName(), "", "declared name "+info.TypeName+" collides with table "+prev, nil)
		}
		declared[info.TypeName] = t.FullName()
		if err != nil {
			g.report(Diagnostic{
				Kind:    UnmappablePrimaryKey,
				Table:   t.FullName(),
				Column:  t.PrimaryKey[0],
				Message: "falling back to " + info.SuperType().String(),
				Cause:   err,
			})
		}
		g.Tables = append(g.Tables, info)
		g.byName[strings.ToLower(t.Name)] = info
	}
	if c.UseDao {
		if err := g.nameEntities(declared); err != nil {
			return nil, err
		}
	}
	for _, info := range g.Tables {
		g.mapColumns(info)
	}
	return g, nil
}

// nameEntities assigns the entity class names. An entity whose singular
// name is already declared by a table object takes the object name
// suffixed with "Entity" instead.
func (g *Graph) nameEntities(declared map[string]string) error {
	for _, info := range g.Tables {
		if !info.HasEntity() {
			continue
		}
		name := EntityName(info.Table.Name)
		if _, ok := declared[name]; ok {
			name = info.TypeName + "Entity"
		}
		if prev, ok := declared[name]; ok {
			return NewCatalogError(info.Table.FullName(), "", "entity name "+name+" collides with a declaration of table "+prev, nil)
		}
		declared[name] = info.Table.FullName()
		info.EntityName = name
	}
	return nil
}

// Table returns the decision of the table with the given raw name.
func (g *Graph) Table(name string) *TableInfo {
	return g.byName[strings.ToLower(name)]
}

// Diagnosed reports whether the run recorded diagnostics of the kind.
func (g *Graph) Diagnosed(kind DiagnosticKind) bool {
	return lo.ContainsBy(g.Diagnostics, func(d Diagnostic) bool { return d.Kind == kind })
}

func (g *Graph) mapColumns(info *TableInfo) {
	t := info.Table
	singleKey := len(t.PrimaryKeyColumns()) == 1
	for _, col := range t.Columns {
		if info.IDColumn == col && info.Supertype.Identity() {
			continue
		}
		ci, err := g.mapper.Map(col)
		if err != nil {
			kind := UnmappableColumn
			if IsConfigError(err) {
				kind = InvalidMapping
			}
			if col.PrimaryKey && singleKey {
				// Reported by classification.
				continue
			}
			g.report(Diagnostic{
				Kind:    kind,
				Table:   t.FullName(),
				Column:  col.Name,
				Message: "column omitted",
				Cause:   err,
			})
			continue
		}
		if g.UseDao && col.References != nil && ci.Reference == nil {
			g.report(Diagnostic{
				Kind:    UnresolvedReference,
				Table:   t.FullName(),
				Column:  col.Name,
				Message: "target " + col.References.Table + "." + col.References.Column + " is not an identity column",
			})
		}
		if _, ok := DefaultLiteral(ci); !ok && ci.DefaultOverride == "" {
			g.report(Diagnostic{
				Kind:    UnsupportedDefault,
				Table:   t.FullName(),
				Column:  col.Name,
				Message: "default " + *ci.Default + " dropped",
			})
			ci.Default = nil
		}
		info.Columns = append(info.Columns, ci)
	}
}

// acceptReference admits references whose target is the identity column
// of a generated table.
func (g *Graph) acceptReference(r *Reference) bool {
	if r.Target == nil {
		return false
	}
	target := g.Table(r.Table)
	return target != nil && target.Supertype.Identity() && target.IDColumn == r.Target
}

func (g *Graph) report(d Diagnostic) {
	g.Diagnostics = append(g.Diagnostics, d)
	g.log(d)
}

func (g *Graph) log(d Diagnostic) {
	var ev *zerolog.Event
	switch d.Kind {
	case UnsupportedDefault, UnresolvedReference:
		ev = g.Logger.Info()
	default:
		ev = g.Logger.Warn()
	}
	ev = ev.Str("kind", d.Kind.String()).Str("table", d.Table)
	if d.Column != "" {
		ev = ev.Str("column", d.Column).Str("key", ConfigName(d.Table, d.Column))
	}
	if d.Cause != nil {
		ev = ev.Err(d.Cause)
	}
	ev.Msg(d.Message)
}
