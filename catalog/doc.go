// Package catalog holds the read-only description of a database that the
// code generator works from.
//
// A Catalog is produced once per generation run, either by crawling a live
// database (see compiler/load) or by decoding a snapshot written earlier:
//
//	cat, err := load.Crawl(ctx, logger, load.SQLite, "file:app.db", "")
//	...
//	err = catalog.WriteSnapshot(f, cat)
//
// Nothing in this package talks to a database. Columns keep a back-reference
// to their table which is not serialized; call Catalog.Link after decoding a
// catalog by hand.
package catalog
