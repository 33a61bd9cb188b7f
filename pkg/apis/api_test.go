package apis

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/pkg/credentials"
)

// recordingSession replies to every request with reply and keeps the last
// request it saw.
type recordingSession struct {
	op     string
	req    *client.SignedRequest
	status int
	reply  string
}

func (s *recordingSession) response() *client.Response {
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &client.Response{StatusCode: status, Header: http.Header{}, Body: []byte(s.reply)}
}

func (s *recordingSession) Get(_ context.Context, req *client.SignedRequest) (*client.Response, error) {
	s.op, s.req = "get", req
	return s.response(), nil
}

func (s *recordingSession) Post(_ context.Context, req *client.SignedRequest) (*client.Response, error) {
	s.op, s.req = "post", req
	return s.response(), nil
}

func (s *recordingSession) Stream(_ context.Context, req *client.SignedRequest) (*client.StreamResponse, error) {
	s.op, s.req = "stream", req
	resp := s.response()
	return &client.StreamResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       io.NopCloser(strings.NewReader(s.reply)),
	}, nil
}

func (s *recordingSession) Close() error {
	return nil
}

// query returns the parameters the last request carried, from either the
// query string or the form body.
func (s *recordingSession) query(t *testing.T) url.Values {
	t.Helper()
	if len(s.req.Body) > 0 {
		values, err := url.ParseQuery(string(s.req.Body))
		require.NoError(t, err)
		return values
	}
	u, err := url.Parse(s.req.URL)
	require.NoError(t, err)
	return u.Query()
}

// path returns the last request URL without its query string.
func (s *recordingSession) path(t *testing.T) string {
	t.Helper()
	u, err := url.Parse(s.req.URL)
	require.NoError(t, err)
	u.RawQuery = ""
	return u.String()
}

func newTestClient(t *testing.T, session *recordingSession) *client.Client {
	t.Helper()
	creds, err := credentials.NewStatic(credentials.Credentials{
		ConsumerKey:       "key",
		ConsumerSecret:    "secret",
		AccessToken:       "token",
		AccessTokenSecret: "token-secret",
	})
	require.NoError(t, err)
	return client.New(session, creds, client.WithLogger(logr.Discard()))
}

func TestJoinEscapesElements(t *testing.T) {
	require.Equal(t, "https://api.example.com/2/users/by/username/a%2Fb", join("https://api.example.com/2/", "users", "by", "username", "a/b"))
}

func TestPtr(t *testing.T) {
	p := Ptr(5)
	require.Equal(t, 5, *p)
	require.Equal(t, 7, orDefault(nil, 7))
	require.Equal(t, 5, orDefault(p, 7))
}
