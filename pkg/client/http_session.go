package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxResponseSize is the default bound on a non-streaming response body.
const MaxResponseSize int64 = 64 << 20

// ErrResponseTooLarge is returned when a response body exceeds the
// session's size limit.
var ErrResponseTooLarge = errors.New("response body too large")

// HTTPSession is the default Session, backed by net/http.
type HTTPSession struct {
	HttpClient *http.Client

	userAgent       string
	maxResponseSize int64
}

type httpSessionOptions struct {
	ca              []byte
	userAgent       string
	httpClient      *http.Client
	maxResponseSize int64
}

type HTTPSessionOption func(*httpSessionOptions)

// WithCA trusts only the given PEM encoded certificates instead of the
// system roots.
func WithCA(ca []byte) HTTPSessionOption {
	return func(o *httpSessionOptions) {
		o.ca = ca
	}
}

func WithUserAgent(ua string) HTTPSessionOption {
	return func(o *httpSessionOptions) {
		o.userAgent = ua
	}
}

// WithMaxResponseSize bounds the body read by Get and Post. Streams are
// not affected.
func WithMaxResponseSize(n int64) HTTPSessionOption {
	return func(o *httpSessionOptions) {
		o.maxResponseSize = n
	}
}

// WithHTTPClient uses c as is. WithCA is ignored when this is set.
func WithHTTPClient(c *http.Client) HTTPSessionOption {
	return func(o *httpSessionOptions) {
		o.httpClient = c
	}
}

func NewHTTPSession(opts ...HTTPSessionOption) (*HTTPSession, error) {
	o := httpSessionOptions{userAgent: "go-tweeter", maxResponseSize: MaxResponseSize}
	for _, opt := range opts {
		opt(&o)
	}

	if o.httpClient != nil {
		return &HTTPSession{HttpClient: o.httpClient, userAgent: o.userAgent, maxResponseSize: o.maxResponseSize}, nil
	}

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if len(o.ca) > 0 {
		certPool := x509.NewCertPool()
		if !certPool.AppendCertsFromPEM(o.ca) {
			return nil, errors.New("no certificates found in CA bundle")
		}
		tlsConfig.RootCAs = certPool
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return &HTTPSession{
		userAgent:       o.userAgent,
		maxResponseSize: o.maxResponseSize,
		HttpClient: &http.Client{
			Transport: transport,
			// Streams stay open indefinitely; deadlines come from the
			// request context.
			Timeout: 0,
		},
	}, nil
}

func (s *HTTPSession) do(ctx context.Context, req *SignedRequest, defaultMethod string) (*http.Response, error) {
	method := req.Method
	if method == "" {
		method = defaultMethod
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		httpReq.Header[k] = v
	}
	httpReq.Header.Set("Accept", string(JSONContentType))
	if s.userAgent != "" {
		httpReq.Header.Set("User-Agent", s.userAgent)
	}

	return s.HttpClient.Do(httpReq)
}

func (s *HTTPSession) read(ctx context.Context, req *SignedRequest, defaultMethod string) (*Response, error) {
	resp, err := s.do(ctx, req, defaultMethod)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	limit := s.maxResponseSize
	if limit <= 0 {
		limit = MaxResponseSize
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrResponseTooLarge, limit)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func (s *HTTPSession) Get(ctx context.Context, req *SignedRequest) (*Response, error) {
	return s.read(ctx, req, http.MethodGet)
}

func (s *HTTPSession) Post(ctx context.Context, req *SignedRequest) (*Response, error) {
	return s.read(ctx, req, http.MethodPost)
}

func (s *HTTPSession) Stream(ctx context.Context, req *SignedRequest) (*StreamResponse, error) {
	resp, err := s.do(ctx, req, http.MethodPost)
	if err != nil {
		return nil, err
	}

	return &StreamResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

func (s *HTTPSession) Close() error {
	s.HttpClient.CloseIdleConnections()
	return nil
}
