package stream

import (
	"errors"
	"fmt"
)

// ErrRecordTooLarge is returned when the remote end sends more than the
// configured maximum without a delimiter.
var ErrRecordTooLarge = errors.New("stream: record exceeds maximum size")

// DecodeError is returned when a record on the stream is not valid JSON.
// It ends the stream; no attempt is made to skip the record.
type DecodeError struct {
	Record []byte
	Err    error
}

func (e *DecodeError) Error() string {
	const preview = 64

	record := e.Record
	suffix := ""
	if len(record) > preview {
		record = record[:preview]
		suffix = "..."
	}
	return fmt.Sprintf("stream: invalid record %q%s: %v", record, suffix, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
