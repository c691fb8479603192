// Package diag implements the diagnostic rendering collaborator described
// in spec.md §6: given a source string, a byte span, a severity level, and
// a title, it returns a formatted snippet. Spans travel through the
// compiler as raw token.Pos byte offsets (see token.LineCol) and are only
// resolved to line/column here, at the boundary with the caller.
package diag

import (
	"fmt"
	"strings"

	"github.com/mna/voxc/lang/token"
)

// Level is the severity attached to a rendered diagnostic.
type Level int

const (
	Error Level = iota
	Warn
)

func (l Level) String() string {
	if l == Warn {
		return "warning"
	}
	return "error"
}

// Render formats a single-line, caret-pointed snippet of source at span,
// prefixed by title and level. It mirrors the shape of the compiler
// errors the scanner and parser already report as plain strings, adding
// the source context a bare error message lacks.
func Render(source string, span token.Span, level Level, title string) string {
	line, col := token.LineCol(source, span.Start)

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s: %s (line %d, col %d)\n", level, title, line, col)

	text := lineText(source, line)
	buf.WriteString(text)
	buf.WriteByte('\n')

	width := int(span.End - span.Start)
	if width < 1 {
		width = 1
	}
	buf.WriteString(strings.Repeat(" ", col-1))
	buf.WriteString(strings.Repeat("^", width))
	return buf.String()
}

// lineText returns the 1-based nth line of source, without its trailing
// newline.
func lineText(source string, n int) string {
	lines := strings.Split(source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
