package write

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/xmltok/scan"
	"github.com/andaru/xmltok/token"
	"github.com/andaru/xmltok/xmlerr"
)

func TestWriteEvent(t *testing.T) {
	start := token.NewElement("my_elem")
	start.PushAttribute([]byte("k1"), []byte("v1"))

	for _, tc := range []struct {
		name string
		ev   token.Event
		want string
	}{
		{
			name: "start with attributes",
			ev:   token.Event{Kind: token.Start, Elem: start},
			want: `<my_elem k1="v1">`,
		},
		{
			name: "end derived from start",
			ev:   token.Event{Kind: token.End, Elem: start.End()},
			want: `</my_elem>`,
		},
		{
			name: "empty",
			ev:   token.Event{Kind: token.Empty, Elem: start},
			want: `<my_elem k1="v1"/>`,
		},
		{
			name: "text passthrough",
			ev:   token.Event{Kind: token.Text, Data: []byte("a < b & c")},
			want: "a < b & c",
		},
		{
			name: "comment",
			ev:   token.Event{Kind: token.Comment, Data: []byte("Test comment")},
			want: "<!--Test comment-->",
		},
		{
			name: "cdata",
			ev:   token.Event{Kind: token.CData, Data: []byte("<raw>&")},
			want: "<![CDATA[<raw>&]]>",
		},
		{
			name: "declaration",
			ev:   token.Event{Kind: token.Decl, Data: []byte(`xml version="1.0"`)},
			want: `<?xml version="1.0"?>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ck := assert.New(t)
			var buf bytes.Buffer
			w := NewWriter(&buf)
			ck.NoError(w.WriteEvent(tc.ev))
			ck.Equal(tc.want, buf.String())
		})
	}
}

func TestWriteEventUnknownKind(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	assert.New(t).Error(w.WriteEvent(token.Event{Kind: token.Kind(99)}))
}

// Unmodified event sequences must reproduce their source bytes exactly
// when read without whitespace trimming.
func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{name: "elements and text", input: "<a><b>some text</b></a>"},
		{name: "attributes verbatim", input: `<tag1 att1 = "test">x</tag1>`},
		{name: "whitespace preserved", input: "<a>\n  <b>x</b>\n</a>"},
		{name: "empty element", input: `<a><c k="v"/></a>`},
		{name: "comment and cdata", input: "<a><!--c--><![CDATA[<x>]]></a>"},
		{name: "declaration", input: `<?xml version="1.0"?><doc>t</doc>`},
		{name: "end tag spacing", input: "<tag1>x</tag1 >"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ck := assert.New(t)
			r := scan.NewReader([]byte(tc.input))
			var buf bytes.Buffer
			w := NewWriter(&buf)
			for {
				ev, err := r.Next()
				if err == io.EOF {
					break
				}
				ck.NoError(err)
				ck.NoError(w.WriteEvent(ev))
			}
			ck.Equal(tc.input, buf.String())
		})
	}
}

func TestWriteIndent(t *testing.T) {
	ck := assert.New(t)
	r := scan.NewReader([]byte("<a><b>text</b><c/><!--done--></a>"))
	var buf bytes.Buffer
	w := NewWriter(&buf, WithIndent(' ', 2))
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		ck.NoError(err)
		ck.NoError(w.WriteEvent(ev))
	}
	ck.Equal("<a>\n  <b>text</b>\n  <c/>\n  <!--done-->\n</a>", buf.String())
}

func TestWriteRawAndInner(t *testing.T) {
	ck := assert.New(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	ck.NoError(w.WriteEvent(token.Event{Kind: token.Start, Elem: token.NewElement("a")}))
	ck.NoError(w.WriteRaw([]byte("&#xA9;")))
	ck.NoError(w.WriteEvent(token.Event{Kind: token.End, Elem: token.NewElement("a")}))
	ck.Equal("<a>&#xA9;</a>", buf.String())
	ck.Equal(&buf, w.Inner())
}

// failAfter fails with io.ErrClosedPipe once n bytes have been written.
type failAfter struct {
	n     int
	wrote bytes.Buffer
}

func (f *failAfter) Write(b []byte) (int, error) {
	if f.wrote.Len()+len(b) > f.n {
		return 0, io.ErrClosedPipe
	}
	f.wrote.Write(b)
	return len(b), nil
}

func TestWriteIOError(t *testing.T) {
	ck := assert.New(t)
	sink := &failAfter{n: 1}
	w := NewWriter(sink)
	err := w.WriteEvent(token.Event{Kind: token.Start, Elem: token.NewElement("abc")})
	if ck.Error(err) {
		kind, ok := xmlerr.KindOf(err)
		ck.True(ok)
		ck.Equal(xmlerr.KindIO, kind)
	}
	// bytes written before the failure are not rolled back
	ck.Equal("<", sink.wrote.String())
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestWriterClose(t *testing.T) {
	ck := assert.New(t)
	sink := &closeRecorder{}
	ck.NoError(NewWriter(sink).Close())
	ck.True(sink.closed)
	// non-closer sinks close without error
	ck.NoError(NewWriter(&bytes.Buffer{}).Close())
}
