// format.go: frame rendering and fmt.Formatter support.
//
// Frame layout (reproduced byte for byte for existing log consumers):
//
//	  [<file> <line>:<column>] <message> <detail> <<marker>>
//
// The detail and the space before it are omitted when empty.
//
// fmt verbs:
//
//	%s, %v  → the chain (Error()).
//	%+v     → kind=<marker> msg="<message>" detail="<detail>" at=<stamp>
//	          followed by the chain on the next lines.
//	%q      → quoted chain.
package xgxchain

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// frameIndent opens every frame.
	frameIndent = "  "

	// connectorGlyph joins a frame to the rendering of its cause.
	connectorGlyph = "⎺↴"
)

// renderFrame returns the frame text and the display width of its
// "  [<stamp>] " prefix, which the connector line is aligned to.
func renderFrame(k *Kind, loc Location, detail string) (string, int) {
	var sb strings.Builder
	sb.WriteString(frameIndent)
	sb.WriteByte('[')
	sb.WriteString(loc.String())
	sb.WriteString("] ")
	width := utf8.RuneCountInString(sb.String())

	sb.WriteString(k.Message())
	if detail != "" {
		sb.WriteByte(' ')
		sb.WriteString(detail)
	}
	sb.WriteString(" <")
	sb.WriteString(k.Marker())
	sb.WriteByte('>')
	return sb.String(), width
}

// connector renders the line placed between a frame and its cause. The
// glyph starts in the column where the frame's message starts.
func connector(width int, call string) string {
	line := strings.Repeat(" ", width) + connectorGlyph
	if call != "" {
		line += " " + call
	}
	return line
}

// indentForeign prefixes every line of a foreign error's text so it lines up
// with library frames.
func indentForeign(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = frameIndent + l
	}
	return strings.Join(lines, "\n")
}

func (e *chainErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.chain)
	case 's':
		_, _ = io.WriteString(s, e.chain)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.chain)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.chain)
	}
}

func formatVerbose(w io.Writer, e *chainErr) {
	_, _ = fmt.Fprintf(w, "kind=%s msg=%q", e.kind.Marker(), e.kind.Message())
	if e.detail != "" {
		_, _ = fmt.Fprintf(w, " detail=%q", e.detail)
	}
	if !e.loc.IsZero() {
		_, _ = fmt.Fprintf(w, " at=%q", e.loc.String())
	}
	_, _ = io.WriteString(w, "\n")
	_, _ = io.WriteString(w, e.chain)
}
