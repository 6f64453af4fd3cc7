/*
Package scan offers a pull-style XML tokenizer.

A Reader scans its input and produces one token.Event per call to Next:
tag boundaries, text runs, comments, CDATA sections and declarations.
No document tree is built and attributes are not decoded during
scanning, keeping the hot path of structure-only scans cheap.

Readers are constructed either over an in-memory buffer (NewReader),
in which case all event payloads are zero-copy views into that buffer,
or over a streaming source (NewReaderFrom), in which case payloads
reference an internal scanner buffer. Either way, a payload is valid
only until the next call to Next; copy it (see token.Element.Owned) to
retain it longer.

Next returns io.EOF at clean end of input. Malformed input produces one
positioned error (see xmlerr); the Reader then becomes terminal and all
further calls return io.EOF. No resynchronization is attempted.

A Reader is not safe for concurrent use, but independent Readers share
no state and may run in parallel.
*/
package scan
