package scan

import (
	"bytes"

	"github.com/andaru/xmltok/token"
)

var (
	tokenCommentOpen = []byte("!--")
	tokenCDataOpen   = []byte("![CDATA[")
)

// assemble builds the event for one complete markup construct. frame
// spans the construct including its delimiters and pos is the absolute
// input offset of frame[0], the '<'.
func assemble(frame []byte, pos int) token.Event {
	rest := frame[1:]
	switch {
	case bytes.HasPrefix(rest, tokenCommentOpen):
		return token.Event{Kind: token.Comment, Data: frame[4 : len(frame)-3], Pos: pos}
	case bytes.HasPrefix(rest, tokenCDataOpen):
		return token.Event{Kind: token.CData, Data: frame[9 : len(frame)-3], Pos: pos}
	case len(rest) > 0 && rest[0] == '?':
		return token.Event{Kind: token.Decl, Data: frame[2 : len(frame)-2], Pos: pos}
	case len(rest) > 0 && rest[0] == '/':
		return token.Event{Kind: token.End, Elem: token.Borrow(frame[2:len(frame)-1], pos+2), Pos: pos}
	default:
		interior := frame[1 : len(frame)-1]
		kind := token.Start
		if len(interior) > 0 && interior[len(interior)-1] == '/' {
			kind = token.Empty
			interior = interior[:len(interior)-1]
		}
		return token.Event{Kind: kind, Elem: token.Borrow(interior, pos+1), Pos: pos}
	}
}
