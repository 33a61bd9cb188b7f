package apis

import (
	"context"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/types"
)

type Statuses struct {
	c   Interface
	url string
}

func NewStatuses(c Interface, apiURL string) *Statuses {
	return &Statuses{c: c, url: join(apiURL, "statuses")}
}

// HomeTimelineOptions defaults: Count 20, TrimUser true, ExcludeReplies
// true, IncludeEntities false.
type HomeTimelineOptions struct {
	Count           *int
	SinceID         *int64
	MaxID           *int64
	TrimUser        *bool
	ExcludeReplies  *bool
	IncludeEntities *bool
}

func (o HomeTimelineOptions) Params() client.Params {
	return client.Params{
		"count":            orDefault(o.Count, 20),
		"since_id":         o.SinceID,
		"max_id":           o.MaxID,
		"trim_user":        orDefault(o.TrimUser, true),
		"exclude_replies":  orDefault(o.ExcludeReplies, true),
		"include_entities": orDefault(o.IncludeEntities, false),
	}
}

// HomeTimeline returns the most recent statuses posted by the
// authenticating user and the users they follow.
func (s *Statuses) HomeTimeline(ctx context.Context, o HomeTimelineOptions, opts ...client.CallOption) ([]types.Tweet, error) {
	return get[[]types.Tweet](ctx, s.c, s.url+"/home_timeline.json", o.Params(), opts)
}

// UserTimelineOptions defaults: TrimUser true, ExcludeReplies true,
// IncludeRetweets false. One of UserID or ScreenName selects the user.
type UserTimelineOptions struct {
	UserID          *string
	ScreenName      *string
	SinceID         *int64
	Count           *int
	MaxID           *int64
	TrimUser        *bool
	ExcludeReplies  *bool
	IncludeRetweets *bool
}

func (o UserTimelineOptions) Params() client.Params {
	return client.Params{
		"user_id":         o.UserID,
		"screen_name":     o.ScreenName,
		"since_id":        o.SinceID,
		"count":           o.Count,
		"max_id":          o.MaxID,
		"trim_user":       orDefault(o.TrimUser, true),
		"exclude_replies": orDefault(o.ExcludeReplies, true),
		"include_rts":     orDefault(o.IncludeRetweets, false),
	}
}

func (s *Statuses) UserTimeline(ctx context.Context, o UserTimelineOptions, opts ...client.CallOption) ([]types.Tweet, error) {
	return get[[]types.Tweet](ctx, s.c, s.url+"/user_timeline.json", o.Params(), opts)
}

// MentionsTimelineOptions defaults: TrimUser true, IncludeEntities true.
type MentionsTimelineOptions struct {
	Count           *int
	SinceID         *int64
	MaxID           *int64
	TrimUser        *bool
	IncludeEntities *bool
}

func (o MentionsTimelineOptions) Params() client.Params {
	return client.Params{
		"count":            o.Count,
		"since_id":         o.SinceID,
		"max_id":           o.MaxID,
		"trim_user":        orDefault(o.TrimUser, true),
		"include_entities": orDefault(o.IncludeEntities, true),
	}
}

func (s *Statuses) MentionsTimeline(ctx context.Context, o MentionsTimelineOptions, opts ...client.CallOption) ([]types.Tweet, error) {
	return get[[]types.Tweet](ctx, s.c, s.url+"/mentions_timeline.json", o.Params(), opts)
}

type UpdateOptions struct {
	InReplyToStatusID         *int64
	AutoPopulateReplyMetadata *bool
	ExcludeReplyUserIDs       []int64
	AttachmentURL             *string
	MediaIDs                  []int64
	PossiblySensitive         *bool
	Lat                       *float64
	Long                      *float64
	PlaceID                   *string
	DisplayCoordinates        *bool
	TrimUser                  *bool
	EnableDMCommands          *bool
	FailDMCommands            *bool
	CardURI                   *string
}

func (o UpdateOptions) Params(status string) client.Params {
	return client.Params{
		"status":                       status,
		"in_reply_to_status_id":        o.InReplyToStatusID,
		"auto_populate_reply_metadata": o.AutoPopulateReplyMetadata,
		"exclude_reply_user_ids":       o.ExcludeReplyUserIDs,
		"attachment_url":               o.AttachmentURL,
		"media_ids":                    o.MediaIDs,
		"possibly_sensitive":           o.PossiblySensitive,
		"lat":                          o.Lat,
		"long":                         o.Long,
		"place_id":                     o.PlaceID,
		"display_coordinates":          o.DisplayCoordinates,
		"trim_user":                    o.TrimUser,
		"enable_dmcommands":            o.EnableDMCommands,
		"fail_dmcommands":              o.FailDMCommands,
		"card_uri":                     o.CardURI,
	}
}

// Update posts a new status for the authenticating user.
func (s *Statuses) Update(ctx context.Context, status string, o UpdateOptions, opts ...client.CallOption) (types.Tweet, error) {
	return post[types.Tweet](ctx, s.c, s.url+"/update.json", o.Params(status), opts)
}

type LookupOptions struct {
	IncludeEntities   *bool
	TrimUser          *bool
	Map               *bool
	IncludeExtAltText *bool
	IncludeCardURI    *bool
}

func (o LookupOptions) Params(ids []int64) client.Params {
	return client.Params{
		"id":                   ids,
		"include_entities":     o.IncludeEntities,
		"trim_user":            o.TrimUser,
		"map":                  o.Map,
		"include_ext_alt_text": o.IncludeExtAltText,
		"include_card_uri":     o.IncludeCardURI,
	}
}

// Lookup returns up to 100 statuses by id.
func (s *Statuses) Lookup(ctx context.Context, ids []int64, o LookupOptions, opts ...client.CallOption) ([]types.Tweet, error) {
	return get[[]types.Tweet](ctx, s.c, s.url+"/lookup.json", o.Params(ids), opts)
}

type OEmbedOptions struct {
	MaxWidth   *int
	HideMedia  *bool
	HideThread *bool
	OmitScript *bool
	Align      *types.Alignment
	Related    []string
	Lang       *string
	Theme      *types.Theme
	LinkColor  *string
	WidgetType *types.WidgetType
	DNT        *bool
}

func (o OEmbedOptions) Params(statusURL string) client.Params {
	return client.Params{
		"url":         statusURL,
		"maxwidth":    o.MaxWidth,
		"hide_media":  o.HideMedia,
		"hide_thread": o.HideThread,
		"omit_script": o.OmitScript,
		"align":       o.Align,
		"related":     o.Related,
		"lang":        o.Lang,
		"theme":       o.Theme,
		"link_color":  o.LinkColor,
		"widget_type": o.WidgetType,
		"dnt":         o.DNT,
	}
}

// OEmbed returns the embeddable HTML for the status at statusURL.
func (s *Statuses) OEmbed(ctx context.Context, statusURL string, o OEmbedOptions, opts ...client.CallOption) (types.OEmbed, error) {
	return get[types.OEmbed](ctx, s.c, s.url+"/oembed.json", o.Params(statusURL), opts)
}
