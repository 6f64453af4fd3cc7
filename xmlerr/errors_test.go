package xmlerr

import (
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindText(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		str  string
		text string
	}{
		{KindUnexpectedEOF, "unexpected EOF", "unexpected-eof"},
		{KindMalformedTag, "malformed tag", "malformed-tag"},
		{KindMalformedAttribute, "malformed attribute", "malformed-attribute"},
		{KindUnterminatedComment, "unterminated comment", "unterminated-comment"},
		{KindUnterminatedCData, "unterminated CDATA section", "unterminated-cdata"},
		{KindUnterminatedDecl, "unterminated declaration", "unterminated-decl"},
		{KindIO, "I/O error", "io"},
	} {
		t.Run(tc.text, func(t *testing.T) {
			ck := assert.New(t)
			ck.Equal(tc.str, tc.kind.String())
			b, err := tc.kind.MarshalText()
			ck.NoError(err)
			ck.Equal(tc.text, string(b))
			var k Kind
			ck.NoError(k.UnmarshalText(b))
			ck.Equal(tc.kind, k)
		})
	}
}

func TestKindUnmarshalUnknown(t *testing.T) {
	ck := assert.New(t)
	var k Kind
	ck.Error(k.UnmarshalText([]byte("bogus")))
	_, err := Kind(42).MarshalText()
	ck.Error(err)
	ck.Equal("Kind(42)", Kind(42).String())
}

func TestErrorFormat(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  New(KindMalformedTag, 12),
			want: "malformed tag at input offset 12",
		},
		{
			name: "with message",
			err:  New(KindMalformedAttribute, 3, WithMessage("expected '='")),
			want: "malformed attribute: expected '=' at input offset 3",
		},
		{
			name: "offset zero",
			err:  New(KindUnterminatedComment, 0),
			want: "unterminated comment at input offset 0",
		},
		{
			name: "io with cause",
			err:  New(KindIO, 0, WithCause(io.ErrClosedPipe)),
			want: "I/O error: io: read/write on closed pipe",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.New(t).Equal(tc.want, tc.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	ck := assert.New(t)

	base := New(KindUnterminatedCData, 44)
	kind, ok := KindOf(base)
	ck.True(ok)
	ck.Equal(KindUnterminatedCData, kind)

	// annotation must not hide the kind
	kind, ok = KindOf(errors.WithStack(base))
	ck.True(ok)
	ck.Equal(KindUnterminatedCData, kind)

	kind, ok = KindOf(errors.Wrap(base, "scanning document"))
	ck.True(ok)
	ck.Equal(KindUnterminatedCData, kind)

	_, ok = KindOf(fmt.Errorf("unrelated"))
	ck.False(ok)
	_, ok = KindOf(nil)
	ck.False(ok)
}
