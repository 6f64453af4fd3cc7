/*
Package split offers a bufio.SplitFunc framing XML constructs.

Tokens returns a SplitFunc for use with a *bufio.Scanner. Each scan
yields exactly one construct: a run of character data, or a complete
tag, comment, CDATA section or declaration including its delimiters.
Input terminating inside a construct produces a positioned error of the
appropriate xmlerr.Kind from the scanner's Err method.

A construct must fit within the scanner's buffer; size the buffer for
the largest single tag, comment or text run expected on the stream.
*/
package split
