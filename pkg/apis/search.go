package apis

import (
	"context"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/types"
)

type Search struct {
	c   Interface
	url string
}

func NewSearch(c Interface, apiURL string) *Search {
	return &Search{c: c, url: join(apiURL, "search")}
}

type SearchOptions struct {
	Geocode         *types.Geocode
	Lang            *string
	Locale          *string
	ResultType      *types.SearchResultType
	Count           *int
	Until           *types.Date
	SinceID         *int64
	MaxID           *int64
	IncludeEntities *bool
}

func (o SearchOptions) Params(q string) client.Params {
	return client.Params{
		"q":                q,
		"geocode":          o.Geocode,
		"lang":             o.Lang,
		"locale":           o.Locale,
		"result_type":      o.ResultType,
		"count":            o.Count,
		"until":            o.Until,
		"since_id":         o.SinceID,
		"max_id":           o.MaxID,
		"include_entities": o.IncludeEntities,
	}
}

// Tweets searches recent statuses matching q.
func (s *Search) Tweets(ctx context.Context, q string, o SearchOptions, opts ...client.CallOption) (types.SearchResponse, error) {
	return get[types.SearchResponse](ctx, s.c, s.url+"/tweets.json", o.Params(q), opts)
}
