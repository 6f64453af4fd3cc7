package write

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/andaru/xmltok/token"
	"github.com/andaru/xmltok/xmlerr"
)

// NewWriter returns a new event serializer writing to the sink output,
// configured with any options provided.
func NewWriter(output io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Writer serializes token events to an output sink.
//
// Writer is not safe for concurrent use and holds exclusive ownership
// of its sink; no other component should write to the sink while the
// Writer is in use.
type Writer struct {
	output io.Writer

	indent []byte // one level's indent bytes; nil disables indentation
	depth  int
	wrote  bool // any event written yet
	inline bool // last event was text; suppress the next line break
}

// WriteEvent serializes ev's byte form to the sink. An I/O failure is
// reported as a KindIO error wrapping the sink's error; bytes already
// written for the failing event are not rolled back.
func (w *Writer) WriteEvent(ev token.Event) error {
	switch ev.Kind {
	case token.Start:
		err := w.writeTag("<", ev.Elem.Interior(), ">")
		w.depth++
		return err
	case token.End:
		if w.depth > 0 {
			w.depth--
		}
		return w.writeTag("</", ev.Elem.Interior(), ">")
	case token.Empty:
		return w.writeTag("<", ev.Elem.Interior(), "/>")
	case token.Text:
		w.inline = true
		w.wrote = true
		return w.write(ev.Data)
	case token.Comment:
		return w.writeTag("<!--", ev.Data, "-->")
	case token.CData:
		return w.writeTag("<![CDATA[", ev.Data, "]]>")
	case token.Decl:
		return w.writeTag("<?", ev.Data, "?>")
	}
	return errors.Errorf("unknown event kind %v", ev.Kind)
}

// WriteRaw writes b to the sink verbatim, bypassing event serialization
// and indentation.
func (w *Writer) WriteRaw(b []byte) error {
	w.wrote = true
	return w.write(b)
}

// Inner relinquishes the sink back to the caller.
func (w *Writer) Inner() io.Writer { return w.output }

// Close attempts to close the underlying sink.
func (w *Writer) Close() error {
	// always be closing
	if closer, ok := w.output.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (w *Writer) writeTag(open string, body []byte, end string) error {
	if err := w.breakLine(); err != nil {
		return err
	}
	w.inline = false
	w.wrote = true
	if err := w.write([]byte(open)); err != nil {
		return err
	}
	if err := w.write(body); err != nil {
		return err
	}
	return w.write([]byte(end))
}

// breakLine writes the indentation prefix for the next construct when
// indentation is enabled. The first event and any construct following
// text are written without a break, keeping mixed content verbatim.
func (w *Writer) breakLine() error {
	if w.indent == nil || !w.wrote || w.inline {
		return nil
	}
	if err := w.write([]byte{'\n'}); err != nil {
		return err
	}
	return w.write(bytes.Repeat(w.indent, w.depth))
}

func (w *Writer) write(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := w.output.Write(b); err != nil {
		return errors.WithStack(xmlerr.New(xmlerr.KindIO, 0, xmlerr.WithCause(err)))
	}
	return nil
}
