package config

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/syssam/exposedgen/compiler/gen"
)

// Options converts the file into generator options. Entries are passed
// through as written: incomplete custom or enum entries are reported per
// column by the generator, not here.
func (f *File) Options(logger zerolog.Logger) ([]gen.Option, error) {
	var errs []error
	opts := []gen.Option{
		gen.WithLogger(logger),
		gen.WithPackage(f.Output.Package),
		gen.WithHeader(f.Output.Header),
		gen.WithCollate(f.Mapping.Collate),
		gen.WithDateTime(f.Mapping.DateTime),
		gen.WithDao(f.Mapping.Dao),
		gen.WithIgnoreTables(f.Mapping.Ignore...),
	}
	if f.Output.Dir != "" {
		opts = append(opts, gen.WithTarget(f.Output.Dir))
	}
	layout, err := gen.ParseLayout(f.Output.Layout)
	if err != nil {
		errs = append(errs, err)
	}
	switch {
	case layout == gen.PerTable:
		opts = append(opts, gen.WithPerTable(f.Output.FullNames))
		if f.Output.FileName != "" {
			errs = append(errs, gen.NewConfigError("output.file_name", f.Output.FileName, "per-table layout does not take a file name"))
		}
	case f.Output.FileName != "":
		opts = append(opts, gen.WithSingleFile(f.Output.FileName))
	}
	for _, e := range f.Mapping.Custom {
		opts = append(opts, gen.WithCustomMapping(e.Column, gen.CustomMapping{
			Type:           e.Type,
			Function:       e.Function,
			Typed:          e.Typed,
			ExistingColumn: e.ExistingColumn,
			IDTableClass:   e.IDTableClass,
		}))
	}
	for _, e := range f.Mapping.Enums {
		opts = append(opts, gen.WithEnumMapping(e.Type, gen.EnumMapping{
			Declaration: e.Declaration,
			EnumClass:   e.EnumClass,
			PgEnumClass: e.PgEnumClass,
		}))
	}
	for _, e := range f.Mapping.Defaults {
		opts = append(opts, gen.WithDefaultExpression(e.Expression, e.Replacement))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return opts, nil
}

// Config builds the generator configuration described by the file.
func (f *File) Config(logger zerolog.Logger) (*gen.Config, error) {
	opts, err := f.Options(logger)
	if err != nil {
		return nil, err
	}
	return gen.NewConfig(opts...)
}
