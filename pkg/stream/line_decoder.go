package stream

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/gammazero/deque"
	"github.com/go-logr/logr"
	jsoniter "github.com/json-iterator/go"
	"k8s.io/klog/v2"
)

const (
	defaultChunkSize     = 32 * 1024
	defaultMaxRecordSize = 16 << 20
)

// LineDecoder reads a long running response body of "\r\n" delimited JSON
// documents and decodes them one at a time.
//
// Blank records are keep-alives and are never decoded. Bytes following the
// final delimiter when the body ends are discarded.
//
// A LineDecoder is owned by a single consumer; only Close may be called
// from another goroutine, and doing so unblocks a pending Decode.
type LineDecoder struct {
	body    io.ReadCloser
	close   func() error
	buf     []byte
	chunk   []byte
	pending *deque.Deque[[]byte]
	maxSize int
	json    jsoniter.API
	log     logr.Logger
	err     error
}

type Option func(*LineDecoder)

func WithLogger(log logr.Logger) Option {
	return func(d *LineDecoder) {
		d.log = log
	}
}

// WithChunkSize sets how much is read from the body at a time.
func WithChunkSize(n int) Option {
	return func(d *LineDecoder) {
		if n > 0 {
			d.chunk = make([]byte, n)
		}
	}
}

// WithMaxRecordSize bounds how large a single record may grow before the
// stream is abandoned with ErrRecordTooLarge.
func WithMaxRecordSize(n int) Option {
	return func(d *LineDecoder) {
		d.maxSize = n
	}
}

// WithJSON replaces the JSON implementation used to decode records.
func WithJSON(api jsoniter.API) Option {
	return func(d *LineDecoder) {
		d.json = api
	}
}

func NewLineDecoder(body io.ReadCloser, opts ...Option) *LineDecoder {
	d := &LineDecoder{
		body:    body,
		close:   sync.OnceValue(body.Close),
		chunk:   make([]byte, defaultChunkSize),
		pending: deque.New[[]byte](),
		maxSize: defaultMaxRecordSize,
		json:    jsoniter.ConfigCompatibleWithStandardLibrary,
		log:     klog.Background(),
	}
	for _, o := range opts {
		o(d)
	}

	return d
}

// Decode blocks until it can decode the next record into v. Returns io.EOF
// once the body is exhausted, or the error which ended the stream.
func (d *LineDecoder) Decode(v any) error {
	record, err := d.Next()
	if err != nil {
		return err
	}
	if err := d.json.Unmarshal(record, v); err != nil {
		d.err = &DecodeError{Record: record, Err: err}
		d.pending = deque.New[[]byte]()
		d.Close()
		return d.err
	}
	return nil
}

// Next returns the next non-blank record without decoding it.
func (d *LineDecoder) Next() ([]byte, error) {
	for d.pending.Len() == 0 {
		if d.err != nil {
			return nil, d.err
		}
		d.read()
	}

	return d.pending.PopFront(), nil
}

func (d *LineDecoder) read() {
	n, err := d.body.Read(d.chunk)
	if n > 0 {
		d.feed(d.chunk[:n])
	}

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if len(d.buf) > 0 {
			d.log.Info("stream ended mid-record, discarding partial record", "bytes", len(d.buf))
		} else {
			d.log.V(2).Info("stream closed by remote")
		}
		d.buf = nil
		d.err = io.EOF
		d.Close()
	default:
		d.buf = nil
		d.err = err
		d.Close()
	}
}

func (d *LineDecoder) feed(chunk []byte) {
	joined := append(d.buf, chunk...)
	records, rest := SplitLines(joined)
	for _, record := range records {
		if len(bytes.TrimSpace(record)) == 0 {
			continue
		}
		d.pending.PushBack(bytes.Clone(record))
	}
	d.buf = append(joined[:0], rest...)

	if d.maxSize > 0 && len(d.buf) > d.maxSize {
		d.buf = nil
		d.err = ErrRecordTooLarge
		d.Close()
	}
}

// Close releases the underlying body. It is safe to call more than once
// and from any goroutine; only the first call reaches the body.
func (d *LineDecoder) Close() error {
	return d.close()
}
