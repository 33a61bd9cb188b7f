package client

import (
	"context"
	"io"
	"net/http"
)

// Session is the transport the Client dispatches signed requests through.
// It performs no authentication or status interpretation of its own.
//
// A Session is shared by every call made through a Client, including long
// running streams, so implementations must support concurrent requests.
type Session interface {
	// Stream opens a long running request. The response status and
	// headers are available before any of the body is read. The caller
	// closes the body.
	Stream(ctx context.Context, req *SignedRequest) (*StreamResponse, error)

	// Get performs a request without a body and reads the full response.
	// req.Method is GET unless set otherwise (for example DELETE).
	Get(ctx context.Context, req *SignedRequest) (*Response, error)

	// Post performs a request with an optional body and reads the full
	// response. req.Method is POST unless set otherwise (for example PUT).
	Post(ctx context.Context, req *SignedRequest) (*Response, error)

	// Close releases any pooled connections.
	Close() error
}

// Response is a fully read response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// StreamResponse is a response whose body is still arriving.
type StreamResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

func isSuccess(status int) bool {
	return status >= 200 && status < 400
}
