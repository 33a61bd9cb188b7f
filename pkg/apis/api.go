// Package apis holds the typed request builders for each resource group.
// Builders turn an options struct into a cleaned parameter map, pick the
// URL and verb, and decode the response into a payload type.
package apis

import (
	"context"
	"net/url"
	"strings"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/pkg/stream"
)

const (
	DefaultAPIURL    = "https://api.twitter.com/1.1"
	DefaultStreamURL = "https://stream.twitter.com/1.1"
	DefaultAPIv2URL  = "https://api.twitter.com/2"
)

// Interface is the part of the authenticated client the builders use.
// *client.Client implements it.
type Interface interface {
	Get(ctx context.Context, url string, params client.Params, v any, opts ...client.CallOption) error
	Post(ctx context.Context, url string, params client.Params, v any, opts ...client.CallOption) error
	Put(ctx context.Context, url string, params client.Params, v any, opts ...client.CallOption) error
	Delete(ctx context.Context, url string, params client.Params, v any, opts ...client.CallOption) error
	Stream(ctx context.Context, url string, params client.Params, opts ...client.StreamOption) (*stream.LineDecoder, error)
}

// Ptr returns a pointer to v, for filling in optional fields.
func Ptr[T any](v T) *T {
	return &v
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func get[T any](ctx context.Context, c Interface, url string, params client.Params, opts []client.CallOption) (T, error) {
	var t T
	err := c.Get(ctx, url, params, &t, opts...)
	return t, err
}

func post[T any](ctx context.Context, c Interface, url string, params client.Params, opts []client.CallOption) (T, error) {
	var t T
	err := c.Post(ctx, url, params, &t, opts...)
	return t, err
}

func put[T any](ctx context.Context, c Interface, url string, params client.Params, opts []client.CallOption) (T, error) {
	var t T
	err := c.Put(ctx, url, params, &t, opts...)
	return t, err
}

func del[T any](ctx context.Context, c Interface, url string, params client.Params, opts []client.CallOption) (T, error) {
	var t T
	err := c.Delete(ctx, url, params, &t, opts...)
	return t, err
}

// join builds an endpoint URL from base and escaped path elements.
func join(base string, elem ...string) string {
	escaped := make([]string, len(elem))
	for i, e := range elem {
		escaped[i] = url.PathEscape(e)
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.Join(escaped, "/")
}
