package apis

import (
	"context"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/types"
)

type Account struct {
	c   Interface
	url string
}

func NewAccount(c Interface, apiURL string) *Account {
	return &Account{c: c, url: join(apiURL, "account")}
}

// Settings returns the authenticating user's settings, including trend,
// geo and sleep time information.
func (a *Account) Settings(ctx context.Context, opts ...client.CallOption) (types.Object, error) {
	return get[types.Object](ctx, a.c, a.url+"/settings.json", nil, opts)
}

type VerifyCredentialsOptions struct {
	IncludeEntities *bool
	SkipStatus      *bool
	IncludeEmail    *bool
}

func (o VerifyCredentialsOptions) Params() client.Params {
	return client.Params{
		"include_entities": o.IncludeEntities,
		"skip_status":      o.SkipStatus,
		"include_email":    o.IncludeEmail,
	}
}

// VerifyCredentials returns the requesting user if the credentials are
// valid. Invalid credentials give an APIError with status 401.
func (a *Account) VerifyCredentials(ctx context.Context, o VerifyCredentialsOptions, opts ...client.CallOption) (types.User, error) {
	return get[types.User](ctx, a.c, a.url+"/verify_credentials.json", o.Params(), opts)
}
