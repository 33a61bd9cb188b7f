package apis

import (
	"context"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/pkg/stream"
	"github.com/EmilyShepherd/go-tweeter/types"
)

type Stream struct {
	c   Interface
	url string
}

func NewStream(c Interface, streamURL string) *Stream {
	return &Stream{c: c, url: join(streamURL, "statuses")}
}

// FilterOptions defaults: FilterLevel none, StallWarnings true.
type FilterOptions struct {
	Follow        []int64
	Track         []string
	Locations     []types.BoundingBox
	FilterLevel   *types.FilterLevel
	Delimited     *int
	StallWarnings *bool
}

func (o FilterOptions) Params() client.Params {
	return client.Params{
		"follow":         o.Follow,
		"track":          o.Track,
		"locations":      o.Locations,
		"filter_level":   orDefault(o.FilterLevel, types.FilterLevelNone),
		"delimited":      o.Delimited,
		"stall_warnings": orDefault(o.StallWarnings, true),
	}
}

// Filter opens a stream of public statuses matching the given users,
// keywords or locations. Messages are delivered undecoded since control
// messages share the connection with statuses.
func (s *Stream) Filter(ctx context.Context, o FilterOptions, opts ...client.StreamOption) (stream.Stream[types.Message], error) {
	d, err := s.c.Stream(ctx, s.url+"/filter.json", o.Params(), opts...)
	if err != nil {
		return nil, err
	}
	return stream.FromDecoder[types.Message](d), nil
}

// Sample opens a stream of a small random sample of all public statuses.
func (s *Stream) Sample(ctx context.Context, opts ...client.StreamOption) (stream.Stream[types.Message], error) {
	d, err := s.c.Stream(ctx, s.url+"/sample.json", nil, opts...)
	if err != nil {
		return nil, err
	}
	return stream.FromDecoder[types.Message](d), nil
}
