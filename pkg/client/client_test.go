package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/EmilyShepherd/go-tweeter/pkg/credentials"
	"github.com/EmilyShepherd/go-tweeter/pkg/oauth"
	"github.com/EmilyShepherd/go-tweeter/pkg/stream"
	"github.com/EmilyShepherd/go-tweeter/types"
)

var testCredentials = credentials.Credentials{
	ConsumerKey:       "xvz1evFS4wEEPTGEFPHBog",
	ConsumerSecret:    "kAcSOqF21Fu85e7zjz7ZN2U4ZRhfV3WpwPAoE3Z7kBw",
	AccessToken:       "370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb",
	AccessTokenSecret: "LswwdoUaIvS8ltyTt5jkRh4J50vUPVVHtR2YPi5kE",
}

type recordedCall struct {
	op  string
	req *SignedRequest
	ctx context.Context
}

// fakeSession answers every call with the configured response and records
// what it was asked to do.
type fakeSession struct {
	mu     sync.Mutex
	calls  []recordedCall
	resp   *Response
	stream *StreamResponse
	err    error
	closed bool
}

func (s *fakeSession) record(ctx context.Context, op string, req *SignedRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, recordedCall{op: op, req: req, ctx: ctx})
}

func (s *fakeSession) last() recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func (s *fakeSession) Get(ctx context.Context, req *SignedRequest) (*Response, error) {
	s.record(ctx, "get", req)
	return s.resp, s.err
}

func (s *fakeSession) Post(ctx context.Context, req *SignedRequest) (*Response, error) {
	s.record(ctx, "post", req)
	return s.resp, s.err
}

func (s *fakeSession) Stream(ctx context.Context, req *SignedRequest) (*StreamResponse, error) {
	s.record(ctx, "stream", req)
	return s.stream, s.err
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type countingBody struct {
	io.Reader
	closes atomic.Int32
}

func (b *countingBody) Close() error {
	b.closes.Add(1)
	return nil
}

func newTestClient(t *testing.T, session Session) *Client {
	t.Helper()
	creds, err := credentials.NewStatic(testCredentials)
	require.NoError(t, err)
	return New(session, creds,
		WithLogger(logr.Discard()),
		WithSigner(oauth.NewSigner(
			oauth.WithClock(func() time.Time { return time.Unix(1318622958, 0) }),
			oauth.WithNonce(func() string { return "kYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg" }),
		)),
	)
}

func okJSON(body string) *Response {
	return &Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte(body)}
}

func TestSignFormMatchesReferenceSignature(t *testing.T) {
	c := newTestClient(t, &fakeSession{})

	req, err := c.Sign(http.MethodPost,
		"https://api.twitter.com/1.1/statuses/update.json?include_entities=true",
		Params{"status": "Hello Ladies + Gentlemen, a signed OAuth request!"}, true)
	require.NoError(t, err)

	require.Equal(t, "https://api.twitter.com/1.1/statuses/update.json?include_entities=true", req.URL)
	require.Equal(t, "status=Hello%20Ladies%20%2B%20Gentlemen%2C%20a%20signed%20OAuth%20request%21", string(req.Body))
	require.Equal(t, string(FormContentType), req.Header.Get("Content-Type"))
	require.Contains(t, req.Header.Get("Authorization"), `oauth_signature="hCtSmYh%2BiHYCEqBWrE7C7hYmtUk%3D"`)
}

func TestSignQueryCleansParams(t *testing.T) {
	c := newTestClient(t, &fakeSession{})

	var missing *int64
	req, err := c.Sign(http.MethodGet, "https://api.example.com/1.1/x.json", Params{
		"count":      5,
		"trim_user":  true,
		"exclude":    false,
		"max_id":     missing,
		"since_id":   nil,
		"user_id":    []int64{1, 2, 3},
		"until":      types.NewDate(2024, time.January, 2),
		"result":     types.SearchResultRecent,
		"empty_list": []string{},
	}, false)
	require.NoError(t, err)
	require.Empty(t, req.Body)
	require.Empty(t, req.Header.Get("Content-Type"))

	u, err := url.Parse(req.URL)
	require.NoError(t, err)
	require.Equal(t, url.Values{
		"count":     {"5"},
		"trim_user": {"true"},
		"exclude":   {"false"},
		"user_id":   {"1,2,3"},
		"until":     {"2024-01-02"},
		"result":    {"recent"},
	}, u.Query())
	require.Equal(t, "count=5&exclude=false&result=recent&trim_user=true&until=2024-01-02&user_id=1%2C2%2C3", u.RawQuery)
	require.True(t, strings.HasPrefix(req.Header.Get("Authorization"), "OAuth "))
}

func TestParamsTimePointers(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	var unset *time.Time

	values, err := Params{"start_time": &ts, "end_time": ts, "until_time": unset}.Values()
	require.NoError(t, err)
	require.Equal(t, url.Values{
		"start_time": {"2024-05-01T12:00:00Z"},
		"end_time":   {"2024-05-01T12:00:00Z"},
	}, values)
}

func TestSignFormWithoutParamsSetsContentType(t *testing.T) {
	c := newTestClient(t, &fakeSession{})

	req, err := c.Sign(http.MethodPost, "https://api.example.com/1.1/x.json", nil, true)
	require.NoError(t, err)
	require.Empty(t, req.Body)
	require.Equal(t, string(FormContentType), req.Header.Get("Content-Type"))
}

func TestSignRejectsInvalidParams(t *testing.T) {
	c := newTestClient(t, &fakeSession{})

	_, err := c.Sign(http.MethodGet, "https://api.example.com/x", Params{"filter_level": types.FilterLevel("extreme")}, false)
	require.ErrorContains(t, err, "filter_level")

	_, err = c.Sign(http.MethodGet, "https://api.example.com/x", Params{"bad": struct{}{}}, false)
	require.ErrorContains(t, err, "unsupported type")
}

func TestGetDecodesResponse(t *testing.T) {
	session := &fakeSession{resp: okJSON(`{"id":42,"screen_name":"someone"}`)}
	c := newTestClient(t, session)

	var user types.User
	require.NoError(t, c.Get(context.Background(), "https://api.example.com/me.json", Params{"skip_status": true}, &user))
	require.EqualValues(t, 42, user.ID)
	require.Equal(t, "someone", user.ScreenName)

	call := session.last()
	require.Equal(t, "get", call.op)
	require.Equal(t, http.MethodGet, call.req.Method)
	require.Equal(t, "https://api.example.com/me.json?skip_status=true", call.req.URL)
}

func TestNotFoundIsAPIError(t *testing.T) {
	session := &fakeSession{resp: &Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{},
		Body:       []byte(`{"errors":[{"code":34}]}`),
	}}
	c := newTestClient(t, session)

	err := c.Get(context.Background(), "https://api.example.com/missing.json", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "https://api.example.com/missing.json", apiErr.URL)
	require.JSONEq(t, `{"errors":[{"code":34}]}`, string(apiErr.Body))
	require.True(t, IsNotFound(err))
	require.False(t, IsRateLimited(err))
	require.Equal(t, KindAPI, Kind(err))
}

func TestRedirectStatusIsSuccess(t *testing.T) {
	session := &fakeSession{resp: &Response{StatusCode: http.StatusFound, Body: []byte(`{}`)}}
	c := newTestClient(t, session)

	require.NoError(t, c.Get(context.Background(), "https://api.example.com/x", nil, &types.Object{}))
}

func TestEmptyGetIsNoData(t *testing.T) {
	session := &fakeSession{resp: okJSON("  ")}
	c := newTestClient(t, session)

	err := c.Get(context.Background(), "https://api.example.com/empty.json", nil, &types.Object{})
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
	require.Equal(t, KindNoData, Kind(err))

	// Writes may legitimately answer with nothing.
	require.NoError(t, c.Post(context.Background(), "https://api.example.com/empty.json", nil, &types.Object{}))
}

func TestInvalidJSONIsDecodeError(t *testing.T) {
	session := &fakeSession{resp: okJSON(`{"id":`)}
	c := newTestClient(t, session)

	err := c.Get(context.Background(), "https://api.example.com/x", nil, &types.Object{})
	require.Equal(t, KindDecode, Kind(err))
}

func TestTransportErrorKind(t *testing.T) {
	boom := errors.New("connection refused")
	c := newTestClient(t, &fakeSession{err: boom})

	err := c.Get(context.Background(), "https://api.example.com/x", nil, nil)
	require.ErrorIs(t, err, boom)
	require.Equal(t, KindTransport, Kind(err))
	require.Equal(t, KindNone, Kind(nil))
}

func TestPutAndDeleteMethods(t *testing.T) {
	session := &fakeSession{resp: okJSON(`{"data":{"following":true}}`)}
	c := newTestClient(t, session)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "https://api.example.com/2/users/1/following", Params{"target_user_id": "2"}, nil))
	call := session.last()
	require.Equal(t, "post", call.op)
	require.Equal(t, http.MethodPut, call.req.Method)
	require.Equal(t, "target_user_id=2", string(call.req.Body))

	require.NoError(t, c.Delete(ctx, "https://api.example.com/2/users/1/following/2", Params{"force": true}, nil))
	call = session.last()
	require.Equal(t, "get", call.op)
	require.Equal(t, http.MethodDelete, call.req.Method)
	require.Equal(t, "https://api.example.com/2/users/1/following/2?force=true", call.req.URL)
	require.Empty(t, call.req.Body)
}

func TestWithTimeoutSetsDeadline(t *testing.T) {
	session := &fakeSession{resp: okJSON(`{}`)}
	c := newTestClient(t, session)

	require.NoError(t, c.Get(context.Background(), "https://api.example.com/x", nil, nil, WithTimeout(time.Minute)))
	deadline, ok := session.last().ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(time.Minute), deadline, 10*time.Second)

	require.NoError(t, c.Get(context.Background(), "https://api.example.com/x", nil, nil))
	_, ok = session.last().ctx.Deadline()
	require.False(t, ok)
}

func TestStreamRefusedIsStreamError(t *testing.T) {
	body := &countingBody{Reader: strings.NewReader(`{"id":1}` + "\r\n")}
	session := &fakeSession{stream: &StreamResponse{
		StatusCode: http.StatusUnauthorized,
		Header:     http.Header{},
		Body:       body,
	}}
	c := newTestClient(t, session)

	d, err := c.Stream(context.Background(), "https://stream.example.com/1.1/statuses/filter.json", Params{"track": "go"})
	require.Nil(t, d)

	var streamErr *StreamError
	require.ErrorAs(t, err, &streamErr)
	require.Equal(t, http.StatusUnauthorized, streamErr.StatusCode)
	require.True(t, IsUnauthorized(err))
	require.Equal(t, KindStream, Kind(err))
	require.EqualValues(t, 1, body.closes.Load())
}

func TestStreamDecodesRecords(t *testing.T) {
	body := &countingBody{Reader: strings.NewReader(`{"id":1}` + "\r\n\r\n" + `{"id":2}` + "\r\n")}
	session := &fakeSession{stream: &StreamResponse{StatusCode: http.StatusOK, Body: body}}
	c := newTestClient(t, session)

	d, err := c.Stream(context.Background(), "https://stream.example.com/1.1/statuses/filter.json",
		Params{"track": []string{"go", "rust"}, "stall_warnings": true})
	require.NoError(t, err)

	call := session.last()
	require.Equal(t, "stream", call.op)
	require.Equal(t, http.MethodPost, call.req.Method)
	require.Equal(t, "https://stream.example.com/1.1/statuses/filter.json?stall_warnings=true&track=go%2Crust", call.req.URL)

	var got []int64
	for tweet, err := range stream.All(context.Background(), stream.FromDecoder[types.Tweet](d)) {
		require.NoError(t, err)
		got = append(got, tweet.ID)
	}
	require.Equal(t, []int64{1, 2}, got)
	require.EqualValues(t, 1, body.closes.Load())
}

func TestStreamWithMethod(t *testing.T) {
	session := &fakeSession{stream: &StreamResponse{StatusCode: http.StatusOK, Body: &countingBody{Reader: strings.NewReader("")}}}
	c := newTestClient(t, session)

	d, err := c.Stream(context.Background(), "https://stream.example.com/1.1/statuses/sample.json", nil, WithMethod(http.MethodGet))
	require.NoError(t, err)
	defer d.Close()

	require.Equal(t, http.MethodGet, session.last().req.Method)
}

func TestCloseClosesSession(t *testing.T) {
	session := &fakeSession{}
	c := newTestClient(t, session)

	require.NoError(t, c.Close())
	require.True(t, session.closed)
}
