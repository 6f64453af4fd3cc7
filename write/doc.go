/*
Package write serializes token events back into XML bytes.

A Writer consumes token.Event values and writes their byte form to a
destination sink. Tag interiors are emitted verbatim, so an unmodified
event sequence read with whitespace trimming disabled reproduces its
source bytes exactly. No escaping of text or attribute values is
performed.

The Writer owns its sink for its lifetime; retrieve it with Inner once
writing is complete.
*/
package write
