package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/thrasher-corp/bfxrest/exchanges/bitfinex"
	"github.com/thrasher-corp/bfxrest/exchanges/request"
	"github.com/thrasher-corp/bfxrest/log"
)

// Load reads the config at path like Read and validates the result
func Load(path string) (*Config, error) {
	c, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Read reads the config file at path, which may be empty, and applies BFX_
// environment overrides on top of the defaults. Encrypted files are
// decrypted with the password in BFX_CONFIG_PASSWORD. The result is not
// validated so callers can apply their own overrides first.
func Read(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if path != "" {
		log.Infof(log.ConfigMgr, "Loaded config file %s", path)
	}
	return &c, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := log.GenDefaultSettings()
	v.SetDefault("url", bitfinex.DefaultURL)
	v.SetDefault("api_key", "")
	v.SetDefault("api_secret", "")
	v.SetDefault("auth_token", "")
	v.SetDefault("proxy", "")
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("affiliate_code", "")
	v.SetDefault("verbose", false)
	v.SetDefault("http_debugging", false)
	v.SetDefault("rate_limit.interval", time.Duration(0))
	v.SetDefault("rate_limit.requests", 0)
	v.SetDefault("logging.level", d.Level)
	v.SetDefault("logging.format", d.Format)
	v.SetDefault("logging.output", d.Output)
	return v
}

func readFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}
	if IsEncrypted(data) {
		pw := os.Getenv(EnvConfigPassword)
		if pw == "" {
			return errNoPassword
		}
		data, err = DecryptConfigData(data, []byte(pw))
		if err != nil {
			return err
		}
	}
	v.SetConfigType(configType(path))
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("unable to parse config file %s: %w", path, err)
	}
	return nil
}

// configType guesses the file format from its extension, ignoring a trailing
// .enc
func configType(path string) string {
	path = strings.TrimSuffix(path, ".enc")
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
	case "yaml", "yml", "toml", "json":
		return ext
	default:
		return "json"
	}
}

// Validate checks the config for values the client cannot use
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", errInvalidURL, c.URL)
	}
	if (c.APIKey == "") != (c.APISecret == "") {
		return errIncompleteCredentials
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", errInvalidTimeout, c.Timeout)
	}
	if c.Proxy != "" {
		p, err := url.Parse(c.Proxy)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidProxy, err)
		}
		if p.Scheme != "socks5" && p.Scheme != "socks5h" {
			return fmt.Errorf("%w: scheme %q is not socks5", errInvalidProxy, p.Scheme)
		}
	}
	if c.RateLimit.Interval < 0 || c.RateLimit.Requests < 0 {
		return fmt.Errorf("%w: %d per %s", errInvalidRateLimit, c.RateLimit.Requests, c.RateLimit.Interval)
	}
	return nil
}

// ClientOptions maps the config onto RESTv2 options
func (c *Config) ClientOptions() (bitfinex.Options, error) {
	o := bitfinex.Options{
		URL:           c.URL,
		APIKey:        c.APIKey,
		APISecret:     c.APISecret,
		AuthToken:     c.AuthToken,
		Timeout:       c.Timeout,
		AffiliateCode: c.AffiliateCode,
		Verbose:       c.Verbose,
		HTTPDebugging: c.HTTPDebugging,
		RateLimit:     c.RateLimits(),
	}
	if c.Proxy != "" {
		agent, err := bitfinex.NewSOCKSAgent(c.Proxy)
		if err != nil {
			return bitfinex.Options{}, err
		}
		o.Agent = agent
	}
	return o, nil
}

// RateLimits returns one shared limiter when a cap is configured and the
// per endpoint exchange limits otherwise
func (c *Config) RateLimits() request.RateLimitDefinitions {
	if c.RateLimit.Interval > 0 && c.RateLimit.Requests > 0 {
		return bitfinex.SetSharedRateLimit(c.RateLimit.Interval, c.RateLimit.Requests)
	}
	return bitfinex.SetRateLimit()
}
