/*
Package xmltok is a streaming, pull-style XML tokenizer and serializer.

These libraries are for programs that scan or transform large XML
documents without materializing a document tree. The scan package pulls
one structured event per call from an in-memory buffer or a streaming
source; the token package models those events, with lazy attribute
decoding and element builders for output; the write package serializes
events back to bytes, preserving unmodified input exactly.

Supporting packages: split offers the bufio.SplitFunc framing XML
constructs for streaming input, xmlerr defines the positioned error
model shared across the module, xmlutil splits qualified names, and
query layers XPath selection over captured event streams for callers
that do need structural queries.

Full XML conformance is a non-goal: there is no DTD processing, entity
expansion, validation or namespace resolution, and the serializer does
not escape text or attribute values.
*/
package xmltok
