// Package config loads the client configuration from a TOML file and the
// environment.
//
// # Configuration Discovery
//
// Load reads the given path, or ~/.config/tweeter/config.toml when the path
// is empty. A missing file is not an error; defaults are used and the
// environment may still supply credentials.
//
// # TOML Format
//
//	consumer_key = "..."
//	consumer_secret = "..."
//	access_token = "..."
//	access_token_secret = "..."
//
//	# Optional. Read and watched for changes instead of the keys above.
//	credentials_file = "~/.config/tweeter/credentials.toml"
//
//	api_url = "https://api.twitter.com/1.1"
//	stream_url = "https://stream.twitter.com/1.1"
//	api_v2_url = "https://api.twitter.com/2"
//	timeout = "30s"
//	ca_file = "/etc/ssl/custom-ca.pem"
//
// Every field is optional. Tilde expansion is performed on ca_file and
// credentials_file.
//
// # Environment
//
// These variables override the credential keys in the file:
//
//   - APP_KEY: consumer_key
//   - APP_KEY_SECRET: consumer_secret
//   - ACCESS_TOKEN: access_token
//   - ACCESS_TOKEN_SECRET: access_token_secret
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors other
// than os.ErrNotExist, TOML parse errors and invalid timeouts. Credentials
// are only validated when a provider is built from them.
package config
