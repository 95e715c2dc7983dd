package kotlin

import (
	"bytes"
	"strings"
)

// PostProcess cleans rendered source: it strips trailing whitespace and
// explicit public modifiers, drops blank lines at the edges of blocks,
// collapses runs of blank lines and ends the text with one newline.
func PostProcess(src []byte) []byte {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimRight(l, " \t")
		l = stripPublic(l)
		if l == "" {
			blank = true
			continue
		}
		trimmed := strings.TrimSpace(l)
		prev := ""
		if len(out) > 0 {
			prev = out[len(out)-1]
		}
		if blank && len(out) > 0 && !strings.HasSuffix(prev, "{") && !strings.HasPrefix(trimmed, "}") {
			out = append(out, "")
		}
		blank = false
		out = append(out, l)
	}
	var b bytes.Buffer
	for _, l := range out {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// stripPublic removes a leading public modifier; it is Kotlin's default.
func stripPublic(line string) string {
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	if rest := line[indent:]; strings.HasPrefix(rest, "public ") {
		return line[:indent] + strings.TrimPrefix(rest, "public ")
	}
	return line
}
