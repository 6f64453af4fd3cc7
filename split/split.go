package split

import (
	"bufio"
	"bytes"

	"github.com/pkg/errors"

	"github.com/andaru/xmltok/xmlerr"
)

var (
	tokenCommentOpen  = []byte("!--")
	tokenCommentClose = []byte("-->")
	tokenCDataOpen    = []byte("![CDATA[")
	tokenCDataClose   = []byte("]]>")
	tokenDeclClose    = []byte("?>")
)

// Tokens returns a bufio.SplitFunc framing one XML construct per token.
//
// The returned function tracks the absolute input offset across calls,
// so errors report the position of the construct that failed, not a
// position relative to the scanner's buffer.
func Tokens() bufio.SplitFunc {
	var off int
	return func(b []byte, atEOF bool) (advance int, token []byte, err error) {
		if len(b) == 0 {
			// clean EOF only between constructs
			return
		}
		if b[0] != '<' {
			// text run: everything up to the next markup introduction
			switch idx := bytes.IndexByte(b, '<'); {
			case idx == -1 && !atEOF:
				return // need more data
			case idx == -1:
				advance = len(b)
			default:
				advance = idx
			}
			token = b[:advance]
			off += advance
			return
		}
		switch n, merr := Markup(b, atEOF, off); {
		case merr != nil:
			err = merr
		case n > 0:
			advance, token = n, b[:n]
			off += n
		}
		return
	}
}

// Markup returns the length in bytes of the markup construct opening at
// b[0] (which must be '<'), including its delimiters. It returns zero
// when b holds only a prefix of the construct and more data may follow.
// If the construct is unterminated at end of input, a positioned error
// is returned; off is the absolute input offset of b[0].
func Markup(b []byte, atEOF bool, off int) (n int, err error) {
	if len(b) < len(tokenCDataOpen)+1 && !atEOF {
		// not enough bytes to dispatch on the longest prefix
		return
	}
	rest := b[1:]
	switch {
	case bytes.HasPrefix(rest, tokenCommentOpen):
		if idx := bytes.Index(b[4:], tokenCommentClose); idx >= 0 {
			return 4 + idx + 3, nil
		}
		if atEOF {
			err = errors.WithStack(xmlerr.New(xmlerr.KindUnterminatedComment, off))
		}
	case bytes.HasPrefix(rest, tokenCDataOpen):
		if idx := bytes.Index(b[9:], tokenCDataClose); idx >= 0 {
			return 9 + idx + 3, nil
		}
		if atEOF {
			err = errors.WithStack(xmlerr.New(xmlerr.KindUnterminatedCData, off))
		}
	case len(rest) > 0 && rest[0] == '?':
		if idx := bytes.Index(b[2:], tokenDeclClose); idx >= 0 {
			return 2 + idx + 2, nil
		}
		if atEOF {
			err = errors.WithStack(xmlerr.New(xmlerr.KindUnterminatedDecl, off))
		}
	case len(rest) > 0 && rest[0] == '/':
		if idx := bytes.IndexByte(b[2:], '>'); idx >= 0 {
			return 2 + idx + 1, nil
		}
		if atEOF {
			err = errors.WithStack(xmlerr.New(xmlerr.KindMalformedTag, off))
		}
	default:
		// start tag or empty-element tag. A '>' inside a quoted
		// attribute value does not terminate the tag.
		var quote byte
		for i := 1; i < len(b); i++ {
			switch c := b[i]; {
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case c == '\'' || c == '"':
				quote = c
			case c == '>':
				return i + 1, nil
			}
		}
		if atEOF {
			err = errors.WithStack(xmlerr.New(xmlerr.KindMalformedTag, off))
		}
	}
	return
}
