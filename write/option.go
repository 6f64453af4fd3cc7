package write

import "bytes"

// WriterOption is a constructor option function for the Writer type.
type WriterOption func(*Writer)

// WithIndent enables pretty-printed output: each construct is written
// on its own line, prefixed by count copies of indent per nesting
// level. Constructs adjacent to text are written without a line break
// so mixed content stays verbatim.
func WithIndent(indent byte, count int) WriterOption {
	return func(w *Writer) {
		if count < 1 {
			return
		}
		w.indent = bytes.Repeat([]byte{indent}, count)
	}
}
