package apis

import (
	"context"
	"time"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/types"
)

// Users wraps the v2 user endpoints. All responses use the v2 envelope.
type Users struct {
	c   Interface
	url string
}

func NewUsers(c Interface, apiV2URL string) *Users {
	return &Users{c: c, url: join(apiV2URL, "users")}
}

// UserFieldOptions selects the expansions and fields returned alongside
// users.
type UserFieldOptions struct {
	Expansions  []string
	TweetFields []string
	UserFields  []string
}

func (o UserFieldOptions) Params() client.Params {
	return client.Params{
		"expansions":   o.Expansions,
		"tweet.fields": o.TweetFields,
		"user.fields":  o.UserFields,
	}
}

// UserListOptions pages through a list of users.
type UserListOptions struct {
	UserFieldOptions
	MaxResults      *int
	PaginationToken *string
}

func (o UserListOptions) Params() client.Params {
	params := o.UserFieldOptions.Params()
	params["max_results"] = o.MaxResults
	params["pagination_token"] = o.PaginationToken
	return params
}

type LikedTweetsOptions struct {
	TweetFieldOptions
	MaxResults      *int
	PaginationToken *string
}

func (o LikedTweetsOptions) Params() client.Params {
	params := o.TweetFieldOptions.Params()
	params["max_results"] = o.MaxResults
	params["pagination_token"] = o.PaginationToken
	return params
}

// TimelineOptions pages through a v2 timeline. Exclude is ignored by
// Mentions.
type TimelineOptions struct {
	TweetFieldOptions
	StartTime       *time.Time
	EndTime         *time.Time
	Exclude         []string
	MaxResults      *int
	PaginationToken *string
	SinceID         *string
	UntilID         *string
}

func (o TimelineOptions) Params() client.Params {
	params := o.TweetFieldOptions.Params()
	params["start_time"] = o.StartTime
	params["end_time"] = o.EndTime
	params["exclude"] = o.Exclude
	params["max_results"] = o.MaxResults
	params["pagination_token"] = o.PaginationToken
	params["since_id"] = o.SinceID
	params["until_id"] = o.UntilID
	return params
}

func (u *Users) LookupByIDs(ctx context.Context, ids []string, o UserFieldOptions, opts ...client.CallOption) (types.Response, error) {
	params := o.Params()
	params["ids"] = ids
	return get[types.Response](ctx, u.c, u.url, params, opts)
}

func (u *Users) LookupByID(ctx context.Context, id string, o UserFieldOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id), o.Params(), opts)
}

func (u *Users) LookupByUsernames(ctx context.Context, usernames []string, o UserFieldOptions, opts ...client.CallOption) (types.Response, error) {
	params := o.Params()
	params["usernames"] = usernames
	return get[types.Response](ctx, u.c, join(u.url, "by"), params, opts)
}

func (u *Users) LookupByUsername(ctx context.Context, username string, o UserFieldOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, "by", "username", username), o.Params(), opts)
}

// Me returns the authenticating user.
func (u *Users) Me(ctx context.Context, o UserFieldOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, "me"), o.Params(), opts)
}

func (u *Users) Following(ctx context.Context, id string, o UserListOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id, "following"), o.Params(), opts)
}

func (u *Users) Followers(ctx context.Context, id string, o UserListOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id, "followers"), o.Params(), opts)
}

// Follow makes the user id follow targetUserID.
func (u *Users) Follow(ctx context.Context, id, targetUserID string, opts ...client.CallOption) (types.Response, error) {
	return put[types.Response](ctx, u.c, join(u.url, id, "following"), client.Params{"target_user_id": targetUserID}, opts)
}

func (u *Users) Unfollow(ctx context.Context, sourceUserID, targetUserID string, opts ...client.CallOption) (types.Response, error) {
	return del[types.Response](ctx, u.c, join(u.url, sourceUserID, "following", targetUserID), nil, opts)
}

func (u *Users) Blocking(ctx context.Context, id string, o UserListOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id, "blocking"), o.Params(), opts)
}

func (u *Users) Block(ctx context.Context, id, targetUserID string, opts ...client.CallOption) (types.Response, error) {
	return put[types.Response](ctx, u.c, join(u.url, id, "blocking"), client.Params{"target_user_id": targetUserID}, opts)
}

func (u *Users) Unblock(ctx context.Context, sourceUserID, targetUserID string, opts ...client.CallOption) (types.Response, error) {
	return del[types.Response](ctx, u.c, join(u.url, sourceUserID, "blocking", targetUserID), nil, opts)
}

func (u *Users) Muting(ctx context.Context, id string, o UserListOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id, "muting"), o.Params(), opts)
}

func (u *Users) Mute(ctx context.Context, id, targetUserID string, opts ...client.CallOption) (types.Response, error) {
	return put[types.Response](ctx, u.c, join(u.url, id, "muting"), client.Params{"target_user_id": targetUserID}, opts)
}

func (u *Users) Unmute(ctx context.Context, sourceUserID, targetUserID string, opts ...client.CallOption) (types.Response, error) {
	return del[types.Response](ctx, u.c, join(u.url, sourceUserID, "muting", targetUserID), nil, opts)
}

// LikedTweets returns the tweets liked by the user id.
func (u *Users) LikedTweets(ctx context.Context, id string, o LikedTweetsOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id, "liked_tweets"), o.Params(), opts)
}

// Timeline returns the tweets composed by the user id.
func (u *Users) Timeline(ctx context.Context, id string, o TimelineOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id, "tweets"), o.Params(), opts)
}

// Mentions returns the tweets mentioning the user id.
func (u *Users) Mentions(ctx context.Context, id string, o TimelineOptions, opts ...client.CallOption) (types.Response, error) {
	params := o.Params()
	delete(params, "exclude")
	return get[types.Response](ctx, u.c, join(u.url, id, "mentions"), params, opts)
}

// ReverseChronological returns the home timeline of the user id, which
// must be the authenticating user.
func (u *Users) ReverseChronological(ctx context.Context, id string, o TimelineOptions, opts ...client.CallOption) (types.Response, error) {
	return get[types.Response](ctx, u.c, join(u.url, id, "timelines", "reverse_chronological"), o.Params(), opts)
}
