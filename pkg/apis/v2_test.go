package apis

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUsersLookup(t *testing.T) {
	session := &recordingSession{reply: `{"data":[{"id":"1","username":"a"}]}`}
	users := NewUsers(newTestClient(t, session), DefaultAPIv2URL)
	ctx := context.Background()

	resp, err := users.LookupByIDs(ctx, []string{"1", "2"}, UserFieldOptions{UserFields: []string{"created_at", "verified"}})
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"1","username":"a"}]`, string(resp.Data))
	require.Equal(t, "https://api.twitter.com/2/users", session.path(t))
	require.Equal(t, url.Values{"ids": {"1,2"}, "user.fields": {"created_at,verified"}}, session.query(t))

	_, err = users.LookupByUsernames(ctx, []string{"a", "b"}, UserFieldOptions{})
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/by", session.path(t))
	require.Equal(t, url.Values{"usernames": {"a,b"}}, session.query(t))

	_, err = users.LookupByUsername(ctx, "a", UserFieldOptions{Expansions: []string{"pinned_tweet_id"}})
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/by/username/a", session.path(t))
	require.Equal(t, url.Values{"expansions": {"pinned_tweet_id"}}, session.query(t))

	_, err = users.LookupByID(ctx, "1", UserFieldOptions{})
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/1", session.req.URL)

	_, err = users.Me(ctx, UserFieldOptions{})
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/me", session.req.URL)
}

func TestUsersLists(t *testing.T) {
	session := &recordingSession{reply: `{"data":[],"meta":{"result_count":0}}`}
	users := NewUsers(newTestClient(t, session), DefaultAPIv2URL)
	ctx := context.Background()
	opts := UserListOptions{MaxResults: Ptr(100), PaginationToken: Ptr("next")}
	want := url.Values{"max_results": {"100"}, "pagination_token": {"next"}}

	for name, call := range map[string]func() error{
		"following": func() error { _, err := users.Following(ctx, "1", opts); return err },
		"followers": func() error { _, err := users.Followers(ctx, "1", opts); return err },
		"blocking":  func() error { _, err := users.Blocking(ctx, "1", opts); return err },
		"muting":    func() error { _, err := users.Muting(ctx, "1", opts); return err },
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, call())
			require.Equal(t, "https://api.twitter.com/2/users/1/"+name, session.path(t))
			require.Equal(t, want, session.query(t))
		})
	}
}

func TestUsersRelationshipWrites(t *testing.T) {
	session := &recordingSession{reply: `{"data":{"following":true}}`}
	users := NewUsers(newTestClient(t, session), DefaultAPIv2URL)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		method string
		url    string
		body   string
	}{
		{"follow", func() error { _, err := users.Follow(ctx, "1", "2"); return err }, http.MethodPut, "https://api.twitter.com/2/users/1/following", "target_user_id=2"},
		{"unfollow", func() error { _, err := users.Unfollow(ctx, "1", "2"); return err }, http.MethodDelete, "https://api.twitter.com/2/users/1/following/2", ""},
		{"block", func() error { _, err := users.Block(ctx, "1", "2"); return err }, http.MethodPut, "https://api.twitter.com/2/users/1/blocking", "target_user_id=2"},
		{"unblock", func() error { _, err := users.Unblock(ctx, "1", "2"); return err }, http.MethodDelete, "https://api.twitter.com/2/users/1/blocking/2", ""},
		{"mute", func() error { _, err := users.Mute(ctx, "1", "2"); return err }, http.MethodPut, "https://api.twitter.com/2/users/1/muting", "target_user_id=2"},
		{"unmute", func() error { _, err := users.Unmute(ctx, "1", "2"); return err }, http.MethodDelete, "https://api.twitter.com/2/users/1/muting/2", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, test.call())
			require.Equal(t, test.method, session.req.Method)
			require.Equal(t, test.url, session.req.URL)
			require.Equal(t, test.body, string(session.req.Body))
		})
	}
}

func TestUsersTimelines(t *testing.T) {
	session := &recordingSession{reply: `{"data":[]}`}
	users := NewUsers(newTestClient(t, session), DefaultAPIv2URL)
	ctx := context.Background()

	opts := TimelineOptions{
		TweetFieldOptions: TweetFieldOptions{TweetFields: []string{"created_at"}},
		StartTime:         Ptr(time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)),
		Exclude:           []string{"retweets", "replies"},
		SinceID:           Ptr("100"),
	}

	_, err := users.Timeline(ctx, "1", opts)
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/1/tweets", session.path(t))
	require.Equal(t, url.Values{
		"tweet.fields": {"created_at"},
		"start_time":   {"2024-05-01T12:00:00Z"},
		"exclude":      {"retweets,replies"},
		"since_id":     {"100"},
	}, session.query(t))

	_, err = users.Mentions(ctx, "1", opts)
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/1/mentions", session.path(t))
	require.False(t, session.query(t).Has("exclude"))

	_, err = users.ReverseChronological(ctx, "1", TimelineOptions{})
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/1/timelines/reverse_chronological", session.req.URL)

	_, err = users.LikedTweets(ctx, "1", LikedTweetsOptions{MaxResults: Ptr(10)})
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/users/1/liked_tweets?max_results=10", session.req.URL)
}

func TestTweetsLookup(t *testing.T) {
	session := &recordingSession{reply: `{"data":{"id":"20","text":"hi"}}`}
	tweets := NewTweets(newTestClient(t, session), DefaultAPIv2URL)
	ctx := context.Background()

	resp, err := tweets.LookupByID(ctx, "20", TweetFieldOptions{Expansions: []string{"author_id"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"20","text":"hi"}`, string(resp.Data))
	require.Equal(t, "https://api.twitter.com/2/tweets/20?expansions=author_id", session.req.URL)

	_, err = tweets.Lookup(ctx, []string{"20", "21"}, TweetFieldOptions{})
	require.NoError(t, err)
	require.Equal(t, "https://api.twitter.com/2/tweets", session.path(t))
	require.Equal(t, url.Values{"ids": {"20,21"}}, session.query(t))
}
