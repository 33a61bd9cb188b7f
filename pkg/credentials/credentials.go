// Package credentials provides the OAuth1 credential set used to sign
// requests, and providers which supply it to the client.
package credentials

import "errors"

// Credentials is the OAuth1 credential set. The consumer pair identifies the
// application; the optional access token pair identifies the user the
// application acts on behalf of.
//
// Credentials is a value type. Providers hand out copies, so a set is never
// changed underneath a request that is being signed.
type Credentials struct {
	ConsumerKey       string `toml:"consumer_key"`
	ConsumerSecret    string `toml:"consumer_secret"`
	AccessToken       string `toml:"access_token"`
	AccessTokenSecret string `toml:"access_token_secret"`
}

// HasUserContext reports whether requests will be signed on behalf of a
// user. Without it, only endpoints which accept application-only
// authentication will succeed.
func (c Credentials) HasUserContext() bool {
	return c.AccessToken != ""
}

// Validate checks that the set can be used for signing.
func (c Credentials) Validate() error {
	if c.ConsumerKey == "" || c.ConsumerSecret == "" {
		return errors.New("credentials: consumer key and consumer secret are required")
	}
	if c.AccessTokenSecret != "" && c.AccessToken == "" {
		return errors.New("credentials: access token secret given without an access token")
	}
	return nil
}

// Provider is a generic interface for a service that provides the
// credentials for the client to use
type Provider interface {

	// Retrieves the current credentials at the time - this may return a
	// fixed value, or the latest value loaded from some backing store.
	Credentials() Credentials
}
