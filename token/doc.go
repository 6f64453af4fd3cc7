/*
Package token defines the event data model produced by the scan package
and consumed by the write package.

An Event is one unit of parsed XML structure: a tag boundary (Start, End
or Empty, each carrying an Element), or a run of bytes (Text, Comment,
CData or Decl). Elements hold the verbatim tag interior; their attribute
region is decoded lazily through Attributes, so documents scanned only
for structure never pay attribute-parsing cost.

Views produced by scanning borrow from the input buffer and remain valid
only until the next advance of the Reader that produced them. Use
Element.Owned to retain an element beyond that window.
*/
package token
