package token

import (
	"github.com/andaru/xmltok/xmlutil"
)

// Element is the structural view of a tag: the verbatim bytes between
// the tag delimiters (the name followed by the raw, undecoded attribute
// region). Elements scanned from input borrow from the source buffer and
// are valid only until the Reader's next advance; elements built for
// output via NewElement own their storage.
type Element struct {
	buf     []byte
	nameLen int
	pos     int
	owned   bool
}

// Borrow wraps the tag interior scanned from an input buffer starting at
// absolute byte offset pos. The name is the leading token of the
// interior; everything after it is the raw attribute region.
func Borrow(interior []byte, pos int) Element {
	i := 0
	for i < len(interior) && isSpace(interior[i]) {
		i++
	}
	interior = interior[i:]
	n := 0
	for n < len(interior) && !isSpace(interior[n]) {
		n++
	}
	return Element{buf: interior, nameLen: n, pos: pos + i}
}

// NewElement returns an owned element with the given tag name and no
// attributes. Attributes are added with PushAttribute.
func NewElement(name string) Element {
	b := []byte(name)
	return Element{buf: b, nameLen: len(b), owned: true}
}

// Name returns the tag name bytes, excluding any surrounding whitespace
// and the attribute region. No case normalization is applied.
func (e Element) Name() []byte { return e.buf[:e.nameLen] }

// Prefix returns the namespace prefix portion of the tag name, or nil.
func (e Element) Prefix() []byte {
	prefix, _ := xmlutil.SplitName(e.Name())
	return prefix
}

// Local returns the local portion of the tag name.
func (e Element) Local() []byte {
	_, local := xmlutil.SplitName(e.Name())
	return local
}

// Interior returns the verbatim tag interior: the name followed by the
// raw attribute region. The serializer emits these bytes unmodified,
// which preserves the original attribute spelling on round trips.
func (e Element) Interior() []byte { return e.buf }

// Pos returns the absolute byte offset of the name within the input, or
// zero for elements built with NewElement.
func (e Element) Pos() int { return e.pos }

// Attributes returns a lazy decoder over the element's raw attribute
// region. Decoding is performed on demand; each call returns a fresh
// iterator positioned at the first attribute.
func (e Element) Attributes() *AttrIter {
	return &AttrIter{b: e.buf[e.nameLen:], base: e.pos + e.nameLen}
}

// PushAttribute appends an attribute rendered as ` key="value"` to the
// element's interior. Order is preserved and duplicates are kept. The
// element's storage becomes owned, so pushing onto a borrowed element is
// safe across Reader advances.
func (e *Element) PushAttribute(key, value []byte) {
	if !e.owned {
		e.buf = append([]byte(nil), e.buf...)
		e.owned = true
	}
	e.buf = append(e.buf, ' ')
	e.buf = append(e.buf, key...)
	e.buf = append(e.buf, '=', '"')
	e.buf = append(e.buf, value...)
	e.buf = append(e.buf, '"')
}

// End derives the element for the matching end tag: the name with no
// attribute region.
func (e Element) End() Element {
	return Element{buf: e.buf[:e.nameLen], nameLen: e.nameLen, pos: e.pos, owned: e.owned}
}

// Owned returns a deep copy of the element whose storage is independent
// of the source buffer, for retention beyond the current event.
func (e Element) Owned() Element {
	buf := append([]byte(nil), e.buf...)
	return Element{buf: buf, nameLen: e.nameLen, pos: e.pos, owned: true}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
