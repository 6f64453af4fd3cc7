package token

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/andaru/xmltok/xmlerr"
)

// Attr is a decoded attribute key/value pair. When decoded from input
// both slices borrow from the source buffer.
type Attr struct {
	Key   []byte
	Value []byte
}

// AttrIter lazily decodes an element's raw attribute region, in the
// manner of bufio.Scanner:
//
//	it := elem.Attributes()
//	for it.Next() {
//		a := it.Attr()
//		// ...
//	}
//	if err := it.Err(); err != nil { ... }
//
// The iterator halts permanently at the first malformed attribute; Err
// then reports a KindMalformedAttribute error positioned at the
// malformation. The element's own event remains valid.
type AttrIter struct {
	b    []byte
	off  int
	base int
	cur  Attr
	err  error
	done bool
}

// Next advances to the next attribute, reporting whether one was
// decoded. It returns false at the end of the region or at the first
// malformation.
func (it *AttrIter) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	it.skipSpace()
	if it.off >= len(it.b) {
		it.done = true
		return false
	}

	// key: up to '=' or whitespace
	start := it.off
	for it.off < len(it.b) && it.b[it.off] != '=' && !isSpace(it.b[it.off]) {
		it.off++
	}
	key := it.b[start:it.off]

	it.skipSpace()
	if it.off >= len(it.b) || it.b[it.off] != '=' {
		return it.fail("expected '='")
	}
	it.off++
	it.skipSpace()
	if it.off >= len(it.b) {
		return it.fail("expected quoted value")
	}
	quote := it.b[it.off]
	if quote != '\'' && quote != '"' {
		return it.fail("expected quoted value")
	}
	it.off++
	idx := bytes.IndexByte(it.b[it.off:], quote)
	if idx < 0 {
		return it.fail("unterminated value")
	}
	it.cur = Attr{Key: key, Value: it.b[it.off : it.off+idx]}
	it.off += idx + 1
	return true
}

// Attr returns the attribute decoded by the last successful call to Next.
func (it *AttrIter) Attr() Attr { return it.cur }

// Err returns the first malformation encountered, or nil.
func (it *AttrIter) Err() error { return it.err }

func (it *AttrIter) skipSpace() {
	for it.off < len(it.b) && isSpace(it.b[it.off]) {
		it.off++
	}
}

func (it *AttrIter) fail(msg string) bool {
	it.err = errors.WithStack(xmlerr.New(
		xmlerr.KindMalformedAttribute, it.base+it.off, xmlerr.WithMessage(msg)))
	return false
}
