package xmlerr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the class of XML syntax or I/O failure.
type Kind int

const (
	// KindUnexpectedEOF indicates input ended while more data was required.
	KindUnexpectedEOF Kind = iota
	// KindMalformedTag indicates a start or end tag was not terminated
	// by '>' before end of input.
	KindMalformedTag
	// KindMalformedAttribute indicates attribute decoding failed; the
	// attribute iterator halts at the first such error.
	KindMalformedAttribute
	// KindUnterminatedComment indicates a comment with no closing "-->".
	KindUnterminatedComment
	// KindUnterminatedCData indicates a CDATA section with no closing "]]>".
	KindUnterminatedCData
	// KindUnterminatedDecl indicates a declaration with no closing "?>".
	KindUnterminatedDecl
	// KindIO indicates a failure writing to the serializer's sink.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "unexpected EOF"
	case KindMalformedTag:
		return "malformed tag"
	case KindMalformedAttribute:
		return "malformed attribute"
	case KindUnterminatedComment:
		return "unterminated comment"
	case KindUnterminatedCData:
		return "unterminated CDATA section"
	case KindUnterminatedDecl:
		return "unterminated declaration"
	case KindIO:
		return "I/O error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindUnexpectedEOF:
		return []byte("unexpected-eof"), nil
	case KindMalformedTag:
		return []byte("malformed-tag"), nil
	case KindMalformedAttribute:
		return []byte("malformed-attribute"), nil
	case KindUnterminatedComment:
		return []byte("unterminated-comment"), nil
	case KindUnterminatedCData:
		return []byte("unterminated-cdata"), nil
	case KindUnterminatedDecl:
		return []byte("unterminated-decl"), nil
	case KindIO:
		return []byte("io"), nil
	}
	return nil, errors.New("unknown value")
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "unexpected-eof":
		*k = KindUnexpectedEOF
	case "malformed-tag":
		*k = KindMalformedTag
	case "malformed-attribute":
		*k = KindMalformedAttribute
	case "unterminated-comment":
		*k = KindUnterminatedComment
	case "unterminated-cdata":
		*k = KindUnterminatedCData
	case "unterminated-decl":
		*k = KindUnterminatedDecl
	case "io":
		*k = KindIO
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error is a positioned XML syntax or I/O error.
type Error struct {
	// Kind is the class of failure detected.
	Kind Kind
	// Offset is the byte offset into the input at which the failure
	// was detected.
	Offset int
	// Message optionally refines the Kind with detail about the
	// specific malformation.
	Message string
	// Err is the underlying error, if any (I/O failures).
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Message != "" {
		msg = msg + ": " + e.Message
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Kind == KindIO {
		return msg
	}
	return fmt.Sprintf("%s at input offset %d", msg, e.Offset)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// New returns a new Error of kind at the input byte offset given,
// configured with any options provided.
func New(kind Kind, offset int, opts ...Option) *Error {
	e := &Error{Kind: kind, Offset: offset}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromError returns the *Error found in err's cause chain, or nil.
// It looks through github.com/pkg/errors annotation.
func FromError(err error) *Error {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok || cause.Cause() == nil {
			return nil
		}
		err = cause.Cause()
	}
	return nil
}

// KindOf reports the Kind of err, if err has an *Error in its cause chain.
func KindOf(err error) (Kind, bool) {
	if e := FromError(err); e != nil {
		return e.Kind, true
	}
	return 0, false
}
