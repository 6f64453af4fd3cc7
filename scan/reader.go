package scan

import (
	"bufio"
	"bytes"
	"io"

	"github.com/lestrrat-go/pdebug"

	"github.com/andaru/xmltok/split"
	"github.com/andaru/xmltok/token"
)

// Reader is a pull-style XML tokenizer.
//
// Reader is not safe for concurrent use.
type Reader struct {
	src     []byte
	scanner *bufio.Scanner

	pos     int // next unread absolute input offset
	pending *token.Event
	err     error
	done    bool

	// config
	bufSize     int
	trimText    bool
	expandEmpty bool
}

// NewReader returns a Reader tokenizing the in-memory buffer b,
// configured with any options provided. Event payloads are zero-copy
// views into b.
func NewReader(b []byte, options ...ReaderOption) *Reader {
	r := &Reader{src: b, bufSize: defaultScannerBufferSize}
	for _, option := range options {
		option(r)
	}
	return r
}

// NewReaderFrom returns a Reader tokenizing the streaming source src,
// configured with any options provided. Input is buffered internally;
// each construct must fit within the scanner buffer (see
// WithScannerBufferSize).
func NewReaderFrom(src io.Reader, options ...ReaderOption) *Reader {
	r := &Reader{bufSize: defaultScannerBufferSize}
	for _, option := range options {
		option(r)
	}
	r.scanner = bufio.NewScanner(src)
	r.scanner.Buffer(make([]byte, r.bufSize), r.bufSize)
	r.scanner.Split(split.Tokens())
	return r
}

// Next returns the next event from the input.
//
// At clean end of input Next returns io.EOF. A syntax error is returned
// exactly once, wrapped around an *xmlerr.Error carrying the input
// offset of the failure; the Reader is then terminal and every further
// call returns io.EOF.
func (r *Reader) Next() (token.Event, error) {
	if pdebug.Enabled {
		g := pdebug.Marker("scan.Reader.Next")
		defer g.End()
	}
	if r.pending != nil {
		ev := *r.pending
		r.pending = nil
		return ev, nil
	}
	if r.done {
		return token.Event{}, io.EOF
	}
	if r.scanner != nil {
		return r.nextStream()
	}
	return r.nextBuffer()
}

// Err returns the error that terminated the Reader, or nil if the
// Reader is still scanning or ended cleanly.
func (r *Reader) Err() error { return r.err }

func (r *Reader) nextBuffer() (token.Event, error) {
	for r.pos < len(r.src) {
		pos := r.pos
		if r.src[pos] != '<' {
			end := len(r.src)
			if idx := bytes.IndexByte(r.src[pos:], '<'); idx >= 0 {
				end = pos + idx
			}
			r.pos = end
			if r.trimText && allSpace(r.src[pos:end]) {
				continue
			}
			return token.Event{Kind: token.Text, Data: r.src[pos:end], Pos: pos}, nil
		}
		n, err := split.Markup(r.src[pos:], true, pos)
		if err != nil {
			return token.Event{}, r.fail(err)
		}
		r.pos = pos + n
		return r.emit(assemble(r.src[pos:r.pos], pos), n), nil
	}
	r.done = true
	return token.Event{}, io.EOF
}

func (r *Reader) nextStream() (token.Event, error) {
	for r.scanner.Scan() {
		frame := r.scanner.Bytes()
		pos := r.pos
		r.pos += len(frame)
		if len(frame) == 0 {
			continue
		}
		if frame[0] != '<' {
			if r.trimText && allSpace(frame) {
				continue
			}
			return token.Event{Kind: token.Text, Data: frame, Pos: pos}, nil
		}
		return r.emit(assemble(frame, pos), len(frame)), nil
	}
	if err := r.scanner.Err(); err != nil {
		return token.Event{}, r.fail(err)
	}
	r.done = true
	return token.Event{}, io.EOF
}

// emit applies empty-element expansion: the Empty event becomes a Start
// with a synthetic End queued behind it, positioned at the '/' byte so
// offsets remain strictly increasing.
func (r *Reader) emit(ev token.Event, n int) token.Event {
	if ev.Kind == token.Empty && r.expandEmpty {
		end := token.Event{Kind: token.End, Elem: ev.Elem.End(), Pos: ev.Pos + n - 2}
		r.pending = &end
		ev.Kind = token.Start
	}
	return ev
}

func (r *Reader) fail(err error) error {
	r.done = true
	r.err = err
	return err
}

func allSpace(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return false
		}
	}
	return true
}
