/*
Package xmlerr defines the positioned error model used throughout the
tokenizer.

Every syntax error carries the Kind of malformation detected along with
the byte Offset into the input at which it was found. Errors are plain
values; callers wishing to classify a wrapped error should use KindOf,
which looks through github.com/pkg/errors annotation.
*/
package xmlerr
