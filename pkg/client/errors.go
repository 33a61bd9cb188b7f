package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/EmilyShepherd/go-tweeter/pkg/stream"
)

// APIError is returned when a request completes with a status outside the
// 2xx and 3xx ranges.
type APIError struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// StreamError is returned when a stream is refused. The body is never read.
type StreamError struct {
	URL        string
	StatusCode int
	Header     http.Header
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream %s refused with status %d", e.URL, e.StatusCode)
}

// NoDataError is returned when a successful GET returns an empty body.
type NoDataError struct {
	URL string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data returned from %s", e.URL)
}

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTransport
	KindAPI
	KindStream
	KindNoData
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAPI:
		return "api"
	case KindStream:
		return "stream"
	case KindNoData:
		return "no data"
	case KindDecode:
		return "decode"
	}
	return "transport"
}

// Kind classifies an error returned by the Client. Anything not produced
// by the Client itself, such as a Session failure or a cancelled context,
// is a transport error.
func Kind(err error) ErrorKind {
	var (
		apiErr    *APIError
		streamErr *StreamError
		noData    *NoDataError
		decodeErr *stream.DecodeError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &streamErr):
		return KindStream
	case errors.As(err, &noData):
		return KindNoData
	case errors.As(err, &decodeErr):
		return KindDecode
	}
	return KindTransport
}

// StatusCode returns the HTTP status carried by an APIError or StreamError.
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	var streamErr *StreamError
	if errors.As(err, &streamErr) {
		return streamErr.StatusCode, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusUnauthorized
}

// IsRateLimited reports whether the request was rejected for exceeding a
// rate limit. The reset time is in the x-rate-limit-reset header.
func IsRateLimited(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusTooManyRequests
}
