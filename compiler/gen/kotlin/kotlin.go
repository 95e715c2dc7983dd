// Package kotlin renders generated units as Kotlin source text.
package kotlin

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"text/template"

	"github.com/samber/lo"

	"github.com/syssam/exposedgen/compiler/gen"
)

const fileTemplate = `
{{- define "file" -}}
{{ with .Header }}{{ comment . }}

{{ end -}}
{{ with .Package }}package {{ . }}

{{ end -}}
{{ range .Imports }}import {{ . }}
{{ end }}
{{ range .Decls }}{{ template "decl" . }}

{{ end -}}
{{- end -}}

{{- define "decl" -}}
{{ .Kind }} {{ .Name }}{{ params .Params }} : {{ super . }} {
{{- with .Companion }}
    {{ .Kind }} : {{ super . }}
{{ end }}
{{- range .Props }}
    {{ property . }}
{{- end }}
}
{{- end -}}
`

// Renderer renders units with text/template and cleans the output with
// PostProcess. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New returns a renderer.
func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("kotlin").Funcs(template.FuncMap{
			"comment":  comment,
			"params":   params,
			"super":    super,
			"property": property,
		}).Parse(fileTemplate)),
	}
}

// data is the template view of a unit.
type data struct {
	*gen.File
	Imports []string
}

// Render writes the Kotlin source of f to w.
func (r *Renderer) Render(w io.Writer, f *gen.File) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "file", data{File: f, Imports: Imports(f)}); err != nil {
		return err
	}
	_, err := w.Write(PostProcess(buf.Bytes()))
	return err
}

// Imports returns the sorted import list of f. Symbols of the unit's own
// package and of the kotlin package are implicit and left out.
func Imports(f *gen.File) []string {
	imports := lo.FilterMap(f.Symbols(), func(s gen.Symbol, _ int) (string, bool) {
		if s.Package == "" || s.Package == f.Package || s.Package == "kotlin" {
			return "", false
		}
		return s.Qualified(), true
	})
	imports = lo.Uniq(imports)
	slices.Sort(imports)
	return imports
}

// comment renders the header as line comments. Lines that already are
// comments are kept.
func comment(header string) string {
	header = strings.TrimRight(header, "\n")
	if strings.HasPrefix(strings.TrimSpace(header), "/*") {
		return header
	}
	lines := strings.Split(header, "\n")
	for i, l := range lines {
		switch l = strings.TrimRight(l, " \t"); {
		case strings.HasPrefix(strings.TrimSpace(l), "//"):
			lines[i] = l
		case l == "":
			lines[i] = "//"
		default:
			lines[i] = "// " + l
		}
	}
	return strings.Join(lines, "\n")
}

func params(ps []gen.Param) string {
	if len(ps) == 0 {
		return ""
	}
	return "(" + strings.Join(lo.Map(ps, func(p gen.Param, _ int) string {
		return p.Name + ": " + p.Type.String()
	}), ", ") + ")"
}

func super(d *gen.Decl) string {
	return d.Super.String() + "(" + strings.Join(d.SuperArgs, ", ") + ")"
}

func property(p *gen.Property) string {
	var b strings.Builder
	if p.Override {
		b.WriteString("override ")
	}
	if p.Mutable {
		b.WriteString("var ")
	} else {
		b.WriteString("val ")
	}
	b.WriteString(p.Name)
	if !p.Type.IsZero() {
		b.WriteString(": ")
		b.WriteString(p.Type.String())
	}
	if p.Delegate {
		b.WriteString(" by ")
	} else {
		b.WriteString(" = ")
	}
	b.WriteString(p.Init)
	return b.String()
}
