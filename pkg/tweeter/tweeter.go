// Package tweeter is the entry point of the library. It ties the endpoint
// builders to one authenticated client and owns its lifecycle.
package tweeter

import (
	"github.com/go-logr/logr"

	"github.com/EmilyShepherd/go-tweeter/pkg/apis"
	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/pkg/credentials"
	"github.com/EmilyShepherd/go-tweeter/pkg/oauth"
)

type Tweeter struct {
	Account  *apis.Account
	Statuses *apis.Statuses
	Search   *apis.Search
	Stream   *apis.Stream
	Users    *apis.Users
	Tweets   *apis.Tweets

	client *client.Client
}

type options struct {
	apiURL    string
	streamURL string
	apiV2URL  string
	client    []client.Option
}

type Option func(*options)

// WithURLs overrides the base URLs. Empty values keep the default.
func WithURLs(api, stream, apiV2 string) Option {
	return func(o *options) {
		if api != "" {
			o.apiURL = api
		}
		if stream != "" {
			o.streamURL = stream
		}
		if apiV2 != "" {
			o.apiV2URL = apiV2
		}
	}
}

func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.client = append(o.client, client.WithLogger(log))
	}
}

func WithSigner(s *oauth.Signer) Option {
	return func(o *options) {
		o.client = append(o.client, client.WithSigner(s))
	}
}

// WithClientOptions passes options straight to the authenticated client.
func WithClientOptions(opts ...client.Option) Option {
	return func(o *options) {
		o.client = append(o.client, opts...)
	}
}

func New(session client.Session, creds credentials.Provider, opts ...Option) *Tweeter {
	o := options{
		apiURL:    apis.DefaultAPIURL,
		streamURL: apis.DefaultStreamURL,
		apiV2URL:  apis.DefaultAPIv2URL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := client.New(session, creds, o.client...)

	return &Tweeter{
		Account:  apis.NewAccount(c, o.apiURL),
		Statuses: apis.NewStatuses(c, o.apiURL),
		Search:   apis.NewSearch(c, o.apiURL),
		Stream:   apis.NewStream(c, o.streamURL),
		Users:    apis.NewUsers(c, o.apiV2URL),
		Tweets:   apis.NewTweets(c, o.apiV2URL),
		client:   c,
	}
}

// Client returns the authenticated client, for endpoints without a
// builder.
func (t *Tweeter) Client() *client.Client {
	return t.client
}

// Close closes the session. Streams still open keep their connections
// until they are closed themselves.
func (t *Tweeter) Close() error {
	return t.client.Close()
}
