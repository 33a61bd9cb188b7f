package stream

import "bytes"

// Delimiter separates records on the wire.
var Delimiter = []byte("\r\n")

// SplitLines cuts buf into the complete, delimiter terminated records it
// contains, in order, and returns the bytes after the last delimiter as
// rest. The records and rest share buf's backing array.
//
// Consecutive delimiters produce empty records; callers decide what to do
// with them.
func SplitLines(buf []byte) (records [][]byte, rest []byte) {
	for {
		i := bytes.Index(buf, Delimiter)
		if i < 0 {
			return records, buf
		}
		records = append(records, buf[:i])
		buf = buf[i+len(Delimiter):]
	}
}
