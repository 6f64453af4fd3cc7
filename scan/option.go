package scan

const (
	// MinScannerBufferSize is the scanner buffer size floor for
	// streaming readers.
	MinScannerBufferSize = 16
	// defaultScannerBufferSize is the default streaming buffer capacity.
	defaultScannerBufferSize = 65536
)

// ReaderOption is a constructor option function for the Reader type.
type ReaderOption func(*Reader)

// WithTrimText configures whitespace-only text suppression. When
// enabled, a text event whose payload is entirely ASCII whitespace is
// omitted from the event sequence; text containing any non-whitespace
// byte passes through unchanged.
func WithTrimText(trim bool) ReaderOption {
	return func(r *Reader) { r.trimText = trim }
}

// WithExpandEmptyElements configures self-closing tag handling. When
// enabled, <t/> surfaces as a Start event immediately followed by a
// synthetic End event instead of a single Empty event.
func WithExpandEmptyElements(expand bool) ReaderOption {
	return func(r *Reader) { r.expandEmpty = expand }
}

// WithScannerBufferSize configures the buffer size of the bufio.Scanner
// used by streaming readers. Each XML construct on the stream must fit
// within this buffer. If bytes is smaller than MinScannerBufferSize,
// the buffer size will be set to MinScannerBufferSize. The option has
// no effect on in-memory readers.
func WithScannerBufferSize(bytes int) ReaderOption {
	return func(r *Reader) {
		if bytes < MinScannerBufferSize {
			bytes = MinScannerBufferSize
		}
		r.bufSize = bytes
	}
}
