package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/syssam/exposedgen/compiler/gen"
)

// printSummary writes the written units followed by the diagnostics,
// grouped by kind.
func printSummary(w io.Writer, g *gen.Graph, paths []string) {
	ok := color.New(color.FgGreen)
	ok.Fprintf(w, "Generated %d table(s) into %d file(s)\n", len(g.Tables), len(paths))
	for _, p := range paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
	if len(g.Diagnostics) == 0 {
		return
	}
	warn := color.New(color.FgYellow)
	dim := color.New(color.FgHiBlack)
	groups := lo.GroupBy(g.Diagnostics, func(d gen.Diagnostic) gen.DiagnosticKind { return d.Kind })
	kinds := lo.Keys(groups)
	slices.Sort(kinds)
	warn.Fprintf(w, "%d column(s) or table(s) need attention\n", len(g.Diagnostics))
	for _, k := range kinds {
		warn.Fprintf(w, "%s (%d)\n", k, len(groups[k]))
		for _, d := range groups[k] {
			fmt.Fprintf(w, "  %s", d.Table)
			if d.Column != "" {
				fmt.Fprintf(w, ".%s", d.Column)
			}
			dim.Fprintf(w, "  %s\n", d.Message)
		}
	}
}
