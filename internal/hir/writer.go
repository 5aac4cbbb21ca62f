package hir

import "strings"

// Writer accumulates an indented textual dump. Rendering the same tree
// twice produces byte-identical output.
type Writer struct {
	sb          strings.Builder
	indent      string
	needsIndent bool
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Write(s string) {
	if w.needsIndent {
		w.sb.WriteString(w.indent)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
}

func (w *Writer) Writeln(s string) {
	w.Write(s)
	w.sb.WriteByte('\n')
	w.needsIndent = true
}

// Indented runs body with one extra level of indentation.
func (w *Writer) Indented(body func()) {
	old := w.indent
	w.indent = old + "  "
	body()
	w.indent = old
}

func (w *Writer) String() string {
	return w.sb.String()
}
