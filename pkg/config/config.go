package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/EmilyShepherd/go-tweeter/pkg/apis"
	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/pkg/credentials"
)

type Config struct {
	Credentials     credentials.Credentials
	CredentialsFile string

	APIURL    string
	StreamURL string
	APIv2URL  string

	// Timeout bounds each non-streaming request. Zero means no timeout.
	Timeout time.Duration
	CAFile  string
}

const defaultConfigPath = "~/.config/tweeter/config.toml"

// Environment variables which override the credentials in the file.
const (
	EnvConsumerKey       = "APP_KEY"
	EnvConsumerSecret    = "APP_KEY_SECRET"
	EnvAccessToken       = "ACCESS_TOKEN"
	EnvAccessTokenSecret = "ACCESS_TOKEN_SECRET"
)

type fileConfig struct {
	ConsumerKey       string `toml:"consumer_key"`
	ConsumerSecret    string `toml:"consumer_secret"`
	AccessToken       string `toml:"access_token"`
	AccessTokenSecret string `toml:"access_token_secret"`
	CredentialsFile   string `toml:"credentials_file"`
	APIURL            string `toml:"api_url"`
	StreamURL         string `toml:"stream_url"`
	APIv2URL          string `toml:"api_v2_url"`
	Timeout           string `toml:"timeout"`
	CAFile            string `toml:"ca_file"`
}

// Load locates and parses the config, falling back to defaults when it is
// missing, then applies the environment.
func Load(path string) (Config, error) {
	cfg := Config{
		APIURL:    apis.DefaultAPIURL,
		StreamURL: apis.DefaultStreamURL,
		APIv2URL:  apis.DefaultAPIv2URL,
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := cfg.parse(data); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

func (c *Config) parse(data []byte) error {
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	c.Credentials = credentials.Credentials{
		ConsumerKey:       strings.TrimSpace(raw.ConsumerKey),
		ConsumerSecret:    strings.TrimSpace(raw.ConsumerSecret),
		AccessToken:       strings.TrimSpace(raw.AccessToken),
		AccessTokenSecret: strings.TrimSpace(raw.AccessTokenSecret),
	}

	setIfPresent(&c.APIURL, raw.APIURL)
	setIfPresent(&c.StreamURL, raw.StreamURL)
	setIfPresent(&c.APIv2URL, raw.APIv2URL)

	if t := strings.TrimSpace(raw.Timeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("parse config: timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("parse config: timeout must not be negative")
		}
		c.Timeout = d
	}

	var err error
	if c.CAFile, err = expandOptional(raw.CAFile); err != nil {
		return err
	}
	if c.CredentialsFile, err = expandOptional(raw.CredentialsFile); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	setIfPresent(&c.Credentials.ConsumerKey, getenv(EnvConsumerKey))
	setIfPresent(&c.Credentials.ConsumerSecret, getenv(EnvConsumerSecret))
	setIfPresent(&c.Credentials.AccessToken, getenv(EnvAccessToken))
	setIfPresent(&c.Credentials.AccessTokenSecret, getenv(EnvAccessTokenSecret))
}

// Provider builds the credential provider. When CredentialsFile is set the
// provider watches that file and must be closed with io.Closer.
func (c Config) Provider(log logr.Logger) (credentials.Provider, error) {
	if c.CredentialsFile != "" {
		f, err := credentials.NewFile(c.CredentialsFile, credentials.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	s, err := credentials.NewStatic(c.Credentials)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Session builds the default HTTP session, trusting CAFile if set.
func (c Config) Session() (*client.HTTPSession, error) {
	var opts []client.HTTPSessionOption
	if c.CAFile != "" {
		ca, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read CA file: %w", err)
		}
		opts = append(opts, client.WithCA(ca))
	}
	return client.NewHTTPSession(opts...)
}

// CallOptions returns the per call options implied by the config.
func (c Config) CallOptions() []client.CallOption {
	if c.Timeout <= 0 {
		return nil
	}
	return []client.CallOption{client.WithTimeout(c.Timeout)}
}

// Close closes p if it holds resources.
func Close(p credentials.Provider) error {
	if closer, ok := p.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandOptional(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
