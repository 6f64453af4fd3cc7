package xmlutil

import "bytes"

// SplitName splits a possibly prefix-qualified XML name around its first
// colon, returning the prefix and local parts. The prefix is nil when the
// name carries no prefix. No namespace resolution is performed.
func SplitName(name []byte) (prefix, local []byte) {
	if idx := bytes.IndexByte(name, ':'); idx > -1 {
		return name[:idx], name[idx+1:]
	}
	return nil, name
}
