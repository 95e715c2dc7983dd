// Package gen maps a database catalog to Kotlin Exposed declarations.
//
// The generator reads a catalog.Catalog and produces one table object per
// table, optionally followed by a DAO entity class. Rendering to text is
// left to a Renderer; the Kotlin renderer lives in gen/kotlin.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	catalog.Catalog (crawled or snapshot)
//	        ↓
//	   Mapper (column → accessor, Kotlin type, nullability, default)
//	        ↓
//	   Classify (table → Table, IntIdTable, LongIdTable, UUIDTable, IdTable<T>)
//	        ↓
//	   Graph (mapped tables plus diagnostics)
//	        ↓
//	   Emit (units of declarations)
//	        ↓
//	   Writer (render and write in parallel)
//
// # Key Types
//
//   - Config: settings of one run, built with NewConfig and functional options
//   - ColumnInfo: everything decided about one column
//   - TableInfo: a classified table and its mapped columns
//   - Graph: the mapped catalog, ready to emit
//   - File, Decl, Property: the emitted declaration tree
//   - Diagnostic: a column or table that could not be generated
//
// # Mapping Rules
//
// Columns are resolved by the first rule that applies: a custom mapping
// keyed by column name, an enum mapping keyed by the lower-case vendor type,
// then the built-in rules driven by the column's native type and vendor
// name. A column no rule resolves is omitted and reported; it never aborts
// the run.
//
// # Error Handling
//
// Fatal problems are returned as typed errors:
//
//   - ConfigError: invalid configuration
//   - CatalogError: an inconsistent catalog, e.g. two tables that share a
//     declared name
//   - GenerationError: a unit failed to render or write
//
// Everything else is collected on Graph.Diagnostics:
//
//	g, err := gen.NewGraph(cfg, cat)
//	if err != nil {
//	    return err
//	}
//	for _, d := range g.Diagnostics {
//	    fmt.Println(d)
//	}
//
// # Configuration
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("build/generated"),
//	    gen.WithPackage("com.example.db"),
//	    gen.WithDateTime("kotlin-datetime"),
//	    gen.WithDao(true),
//	)
//
// The default layout writes every table into a single unit named Tables;
// WithPerTable writes one unit per table.
//
// # Usage
//
//	import (
//	    "github.com/syssam/exposedgen/compiler/gen"
//	    "github.com/syssam/exposedgen/compiler/gen/kotlin"
//	)
//
//	paths, err := gen.Generate(ctx, g, kotlin.New())
package gen
