package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/EmilyShepherd/go-tweeter/pkg/util"
)

// Object is an undecoded JSON object, used for responses whose shape
// depends on the requested fields and expansions.
type Object = map[string]any

// Date is a calendar day without a time component. It is serialized as
// YYYY-MM-DD when used as a request parameter.
type Date time.Time

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d Date) String() string {
	return time.Time(d).Format(time.DateOnly)
}

// Location is a longitude, latitude pair.
type Location struct {
	Longitude float64
	Latitude  float64
}

// BoundingBox is described by its south-west and north-east corners.
type BoundingBox struct {
	SouthWest Location
	NorthEast Location
}

func (b BoundingBox) String() string {
	return util.JoinFloats([]float64{
		b.SouthWest.Longitude, b.SouthWest.Latitude,
		b.NorthEast.Longitude, b.NorthEast.Latitude,
	})
}

// Geocode restricts a search to users located within Radius of a point.
// Radius carries its unit, for example "1mi" or "5km".
type Geocode struct {
	Latitude  float64
	Longitude float64
	Radius    string
}

func (g Geocode) String() string {
	return fmt.Sprintf("%s,%s,%s", util.FormatFloat(g.Latitude), util.FormatFloat(g.Longitude), g.Radius)
}

type User struct {
	ID                   int64          `json:"id"`
	IDStr                string         `json:"id_str"`
	Name                 string         `json:"name"`
	ScreenName           string         `json:"screen_name"`
	Location             *string        `json:"location"`
	Derived              map[string]any `json:"derived,omitempty"`
	URL                  *string        `json:"url"`
	Description          *string        `json:"description"`
	Protected            bool           `json:"protected"`
	Verified             bool           `json:"verified"`
	FollowersCount       int            `json:"followers_count"`
	FriendsCount         int            `json:"friends_count"`
	ListedCount          int            `json:"listed_count"`
	FavouritesCount      int            `json:"favourites_count"`
	StatusesCount        int            `json:"statuses_count"`
	CreatedAt            string         `json:"created_at"`
	ProfileBannerURL     string         `json:"profile_banner_url,omitempty"`
	ProfileImageURLHTTPS string         `json:"profile_image_url_https,omitempty"`
	DefaultProfile       bool           `json:"default_profile"`
	DefaultProfileImage  bool           `json:"default_profile_image"`
	WithheldInCountries  []string       `json:"withheld_in_countries,omitempty"`
	WithheldScope        *string        `json:"withheld_scope,omitempty"`
}

type Coordinates struct {
	// Coordinates are in longitude, latitude order.
	Coordinates [2]float64 `json:"coordinates"`
	Type        string     `json:"type"`
}

type Tweet struct {
	CreatedAt            string       `json:"created_at"`
	ID                   int64        `json:"id"`
	IDStr                string       `json:"id_str"`
	Text                 string       `json:"text"`
	FullText             string       `json:"full_text,omitempty"`
	Source               string       `json:"source"`
	Truncated            bool         `json:"truncated"`
	InReplyToStatusID    *int64       `json:"in_reply_to_status_id"`
	InReplyToStatusIDStr *string      `json:"in_reply_to_status_id_str"`
	InReplyToUserID      *int64       `json:"in_reply_to_user_id"`
	InReplyToUserIDStr   *string      `json:"in_reply_to_user_id_str"`
	InReplyToScreenName  *string      `json:"in_reply_to_screen_name"`
	User                 *User        `json:"user,omitempty"`
	Coordinates          *Coordinates `json:"coordinates"`
	Entities             Object       `json:"entities,omitempty"`
}

type SearchMetadata struct {
	CompletedIn float64 `json:"completed_in"`
	MaxID       int64   `json:"max_id"`
	MaxIDStr    string  `json:"max_id_str"`
	NextResults string  `json:"next_results,omitempty"`
	Query       string  `json:"query"`
	RefreshURL  string  `json:"refresh_url,omitempty"`
	Count       int     `json:"count"`
	SinceID     int64   `json:"since_id"`
	SinceIDStr  string  `json:"since_id_str"`
}

type SearchResponse struct {
	Statuses       []Tweet        `json:"statuses"`
	SearchMetadata SearchMetadata `json:"search_metadata"`
}

type OEmbed struct {
	URL          string `json:"url"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	HTML         string `json:"html"`
	Width        *int   `json:"width"`
	Height       *int   `json:"height"`
	Type         string `json:"type"`
	CacheAge     string `json:"cache_age"`
	ProviderName string `json:"provider_name"`
	ProviderURL  string `json:"provider_url"`
	Version      string `json:"version"`
}

// Response is the envelope returned by the v2 endpoints.
type Response struct {
	Data     json.RawMessage `json:"data,omitempty"`
	Includes Object          `json:"includes,omitempty"`
	Errors   []Object        `json:"errors,omitempty"`
	Meta     Object          `json:"meta,omitempty"`
}

// Message is a single record delivered by a streaming endpoint. Most are
// tweets, but control messages (limit notices, stall warnings,
// disconnects) arrive on the same connection, so the raw document is kept.
type Message = json.RawMessage

// StreamInterface can be implemented by anything that delivers a long
// running sequence of decoded messages.
type StreamInterface[T any] interface {
	// Stop stops the stream. Will close the channel returned by
	// ResultChan(). Releases the underlying connection.
	Stop()

	// ResultChan returns a chan which will receive all the messages. If an
	// error occurs or Stop() is called, this channel will be closed.
	ResultChan() <-chan T

	// Error returns the error which terminated the stream, if any.
	Error() error
}
