/*
Package query evaluates XPath expressions over scanned XML.

The tokenizer deliberately builds no document tree. When a caller does
need structural queries over a document or a captured region of one,
Capture drains a scan.Reader, re-serializes its events and parses the
result into an xmlquery node tree; Selector wraps compiled XPath
expressions for evaluation against that tree.

The usual shape is to scan a large document cheaply and materialize
only the subtrees of interest for querying.
*/
package query
