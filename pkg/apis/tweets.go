package apis

import (
	"context"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/types"
)

// TweetFieldOptions selects the expansions and fields returned alongside
// tweets by the v2 endpoints.
type TweetFieldOptions struct {
	Expansions  []string
	MediaFields []string
	PlaceFields []string
	PollFields  []string
	TweetFields []string
	UserFields  []string
}

func (o TweetFieldOptions) Params() client.Params {
	return client.Params{
		"expansions":   o.Expansions,
		"media.fields": o.MediaFields,
		"place.fields": o.PlaceFields,
		"poll.fields":  o.PollFields,
		"tweet.fields": o.TweetFields,
		"user.fields":  o.UserFields,
	}
}

type Tweets struct {
	c   Interface
	url string
}

func NewTweets(c Interface, apiV2URL string) *Tweets {
	return &Tweets{c: c, url: join(apiV2URL, "tweets")}
}

func (t *Tweets) Lookup(ctx context.Context, ids []string, o TweetFieldOptions, opts ...client.CallOption) (types.Response, error) {
	params := o.Params()
	params["ids"] = ids
	return get[types.Response](ctx, t.c, t.url, params, opts)
}

func (t *Tweets) LookupByID(ctx context.Context, id string, o TweetFieldOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, t.c, join(t.url, id), o.Params(), opts)
}
