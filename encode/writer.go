package encode

import "strings"

// writer accumulates indented text. Indentation is applied lazily, at the
// start of the next physical line, so a container can open on a line that
// was begun with write.
type writer struct {
	buf       strings.Builder
	indentStr string
	depth     int
	pending   bool
}

func newWriter(indent string) *writer {
	return &writer{indentStr: indent}
}

func (w *writer) write(s string) {
	if w.pending {
		w.buf.WriteByte('\n')
		w.buf.WriteString(strings.Repeat(w.indentStr, w.depth))
		w.pending = false
	}
	w.buf.WriteString(s)
}

func (w *writer) writeLine(s string) {
	w.write(s)
	w.pending = true
}

func (w *writer) indent(n int) {
	w.depth += n
}

// output returns the text so far, without a trailing newline.
func (w *writer) output() string {
	return w.buf.String()
}

func (w *writer) clear() {
	w.buf.Reset()
	w.depth = 0
	w.pending = false
}
