package token

import "fmt"

// Kind enumerates the Event variants.
type Kind int

const (
	// Start is an opening tag, e.g. <item id="1">
	Start Kind = iota
	// End is a closing tag, e.g. </item>
	End
	// Empty is a self-closing tag, e.g. <item/>
	Empty
	// Text is a run of character data between tags
	Text
	// Comment is a <!-- --> comment; Data holds the interior bytes
	Comment
	// CData is a <![CDATA[ ]]> section; Data holds the interior bytes
	CData
	// Decl is a <? ?> declaration; Data holds the interior bytes
	Decl
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	case Empty:
		return "empty"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case CData:
		return "cdata"
	case Decl:
		return "decl"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one unit of parsed XML structure.
//
// Exactly one variant is active: Elem is set for Start, End and Empty
// events, Data for Text, Comment, CData and Decl events. Pos is the byte
// offset of the construct's first byte within the input; positions are
// strictly increasing across a Reader's event sequence.
type Event struct {
	Kind Kind
	Elem Element
	Data []byte
	Pos  int
}
