package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-logr/logr"
	jsoniter "github.com/json-iterator/go"
	"k8s.io/klog/v2"

	"github.com/EmilyShepherd/go-tweeter/pkg/credentials"
	"github.com/EmilyShepherd/go-tweeter/pkg/oauth"
	"github.com/EmilyShepherd/go-tweeter/pkg/stream"
)

// Client signs requests with OAuth 1.0a user context credentials and
// dispatches them through a Session.
type Client struct {
	session Session
	creds   credentials.Provider
	signer  *oauth.Signer
	log     logr.Logger
	json    jsoniter.API

	streamOpts []stream.Option
}

type Option func(*Client)

func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithSigner(s *oauth.Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithStreamOptions are applied to every decoder returned by Stream.
func WithStreamOptions(opts ...stream.Option) Option {
	return func(c *Client) {
		c.streamOpts = append(c.streamOpts, opts...)
	}
}

func New(session Session, creds credentials.Provider, opts ...Option) *Client {
	c := &Client{
		session: session,
		creds:   creds,
		signer:  oauth.NewSigner(),
		log:     klog.Background(),
		json:    jsoniter.ConfigCompatibleWithStandardLibrary,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type callOptions struct {
	timeout time.Duration
}

type CallOption func(*callOptions)

// WithTimeout bounds a single call.
func WithTimeout(d time.Duration) CallOption {
	return func(o *callOptions) {
		o.timeout = d
	}
}

func newCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type streamOptions struct {
	method string
}

// StreamOption configures a single stream. Streams have no timeout; they
// are bounded by their context.
type StreamOption func(*streamOptions)

// WithMethod overrides the HTTP method of a stream. Streams use POST by
// default.
func WithMethod(method string) StreamOption {
	return func(o *streamOptions) {
		o.method = method
	}
}

// Session returns the transport the Client was built with.
func (c *Client) Session() Session {
	return c.session
}

// Sign cleans params and builds a signed request. When form is set the
// parameters become a form encoded body, otherwise they are appended to the
// query string. Either way they are covered by the signature.
func (c *Client) Sign(method, rawURL string, params Params, form bool) (*SignedRequest, error) {
	values, err := params.Values()
	if err != nil {
		return nil, err
	}

	req := &SignedRequest{
		Method: method,
		URL:    rawURL,
		Header: http.Header{},
	}

	var bodyParams url.Values
	if form {
		req.Header.Set("Content-Type", string(FormContentType))
		if len(values) > 0 {
			req.Body = []byte(oauth.EncodeQuery(values))
			bodyParams = values
		}
	} else {
		req.URL = appendQuery(rawURL, oauth.EncodeQuery(values))
	}

	auth, err := c.signer.Authorization(c.creds.Credentials(), method, req.URL, bodyParams)
	if err != nil {
		return nil, fmt.Errorf("sign %s %s: %w", method, rawURL, err)
	}
	req.Header.Set("Authorization", auth)

	return req, nil
}

// Get performs a GET and decodes the JSON response into v. A successful
// response with an empty body is a NoDataError.
func (c *Client) Get(ctx context.Context, rawURL string, params Params, v any, opts ...CallOption) error {
	return c.do(ctx, http.MethodGet, rawURL, params, v, true, opts)
}

// Post performs a form encoded POST and decodes any JSON response into v.
func (c *Client) Post(ctx context.Context, rawURL string, params Params, v any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPost, rawURL, params, v, false, opts)
}

func (c *Client) Put(ctx context.Context, rawURL string, params Params, v any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPut, rawURL, params, v, false, opts)
}

func (c *Client) Delete(ctx context.Context, rawURL string, params Params, v any, opts ...CallOption) error {
	return c.do(ctx, http.MethodDelete, rawURL, params, v, false, opts)
}

func (c *Client) do(ctx context.Context, method, rawURL string, params Params, v any, requireBody bool, opts []CallOption) error {
	o := newCallOptions(opts)
	form := method == http.MethodPost || method == http.MethodPut

	req, err := c.Sign(method, rawURL, params, form)
	if err != nil {
		return err
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	c.log.V(4).Info("dispatching request", "method", method, "url", rawURL)

	var resp *Response
	if form {
		resp, err = c.session.Post(ctx, req)
	} else {
		resp, err = c.session.Get(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, rawURL, err)
	}

	if !isSuccess(resp.StatusCode) {
		return &APIError{
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       resp.Body,
		}
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		if requireBody {
			return &NoDataError{URL: req.URL}
		}
		return nil
	}

	if v == nil {
		return nil
	}
	if err := c.json.Unmarshal(resp.Body, v); err != nil {
		return &stream.DecodeError{Record: resp.Body, Err: err}
	}
	return nil
}

// Stream opens a streaming endpoint. A refused stream is a StreamError and
// its body is closed unread. The returned decoder owns the response body.
func (c *Client) Stream(ctx context.Context, rawURL string, params Params, opts ...StreamOption) (*stream.LineDecoder, error) {
	o := streamOptions{method: http.MethodPost}
	for _, opt := range opts {
		opt(&o)
	}
	method := o.method

	req, err := c.Sign(method, rawURL, params, false)
	if err != nil {
		return nil, err
	}

	resp, err := c.session.Stream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("stream %s: %w", rawURL, err)
	}

	if !isSuccess(resp.StatusCode) {
		resp.Body.Close()
		return nil, &StreamError{
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
		}
	}

	c.log.V(2).Info("stream opened", "url", rawURL)

	decoderOpts := append([]stream.Option{
		stream.WithLogger(c.log.WithValues("url", rawURL)),
		stream.WithJSON(c.json),
	}, c.streamOpts...)
	return stream.NewLineDecoder(resp.Body, decoderOpts...), nil
}

// Close closes the Session.
func (c *Client) Close() error {
	return c.session.Close()
}
