// Package oauth signs requests with OAuth 1.0a (RFC 5849) credentials.
package oauth

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/google/uuid"

	"github.com/EmilyShepherd/go-tweeter/pkg/credentials"
)

// Method is an OAuth1 signature method.
type Method string

const (
	HMACSHA1   Method = "HMAC-SHA1"
	HMACSHA256 Method = "HMAC-SHA256"
)

const version = "1.0"

// Signer computes the Authorization header for a request. It has no mutable
// state, so one Signer can be shared by any number of goroutines.
type Signer struct {
	method Method
	now    func() time.Time
	nonce  func() string
}

type Option func(*Signer)

// WithMethod selects the signature method. HMAC-SHA1 is used by default.
func WithMethod(m Method) Option {
	return func(s *Signer) {
		s.method = m
	}
}

// WithClock replaces the source of oauth_timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// WithNonce replaces the source of oauth_nonce.
func WithNonce(nonce func() string) Option {
	return func(s *Signer) {
		s.nonce = nonce
	}
}

func NewSigner(opts ...Option) *Signer {
	s := &Signer{
		method: HMACSHA1,
		now:    time.Now,
		nonce:  randomNonce,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func randomNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Authorization returns the value for the Authorization header of a
// request. rawURL may carry a query string; its parameters are signed along
// with params, which holds any form encoded body parameters.
func (s *Signer) Authorization(c credentials.Credentials, method, rawURL string, params url.Values) (string, error) {
	oauthParams := s.oauthParams(c)

	all := url.Values{}
	for k, v := range oauthParams {
		all.Set(k, v)
	}
	for k, vs := range params {
		for _, v := range vs {
			all.Add(k, v)
		}
	}

	base, err := BaseString(method, rawURL, all)
	if err != nil {
		return "", err
	}

	signature, err := s.sign(c, base)
	if err != nil {
		return "", err
	}
	oauthParams["oauth_signature"] = signature

	return header(oauthParams), nil
}

func (s *Signer) oauthParams(c credentials.Credentials) map[string]string {
	p := map[string]string{
		"oauth_consumer_key":     c.ConsumerKey,
		"oauth_nonce":            s.nonce(),
		"oauth_signature_method": string(s.method),
		"oauth_timestamp":        strconv.FormatInt(s.now().Unix(), 10),
		"oauth_version":          version,
	}
	if c.AccessToken != "" {
		p["oauth_token"] = c.AccessToken
	}
	return p
}

func (s *Signer) sign(c credentials.Credentials, base string) (string, error) {
	var signer oauth1.Signer

	// The signing key is the encoded consumer secret and token secret
	// joined by "&".
	switch s.method {
	case HMACSHA1:
		signer = &oauth1.HMACSigner{ConsumerSecret: PercentEncode(c.ConsumerSecret)}
	case HMACSHA256:
		signer = &oauth1.HMAC256Signer{ConsumerSecret: PercentEncode(c.ConsumerSecret)}
	default:
		return "", fmt.Errorf("oauth: unsupported signature method %q", s.method)
	}

	return signer.Sign(PercentEncode(c.AccessTokenSecret), base)
}

// BaseString builds the signature base string: the upper cased method, the
// base URL and the normalised parameters, each percent encoded and joined by
// "&". Query parameters on rawURL are merged into params.
func BaseString(method, rawURL string, params url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("oauth: %w", err)
	}

	all := url.Values{}
	for k, vs := range u.Query() {
		all[k] = append(all[k], vs...)
	}
	for k, vs := range params {
		all[k] = append(all[k], vs...)
	}

	return strings.Join([]string{
		PercentEncode(strings.ToUpper(method)),
		PercentEncode(baseURL(u)),
		PercentEncode(NormalizeParams(all)),
	}, "&"), nil
}

// NormalizeParams encodes every key and value, sorts by key then value, and
// joins the pairs with "&".
func NormalizeParams(params url.Values) string {
	type pair struct{ k, v string }

	pairs := make([]pair, 0, len(params))
	for k, vs := range params {
		ek := PercentEncode(k)
		for _, v := range vs {
			pairs = append(pairs, pair{ek, PercentEncode(v)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k != pairs[j].k {
			return pairs[i].k < pairs[j].k
		}
		return pairs[i].v < pairs[j].v
	})

	encoded := make([]string, len(pairs))
	for i, p := range pairs {
		encoded[i] = p.k + "=" + p.v
	}

	return strings.Join(encoded, "&")
}

func baseURL(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" &&
		!(scheme == "http" && port == "80") &&
		!(scheme == "https" && port == "443") {
		host += ":" + port
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path
}

func header(oauthParams map[string]string) string {
	keys := make([]string, 0, len(oauthParams))
	for k := range oauthParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf(`%s="%s"`, PercentEncode(k), PercentEncode(oauthParams[k]))
	}

	return "OAuth " + strings.Join(parts, ", ")
}
