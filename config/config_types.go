package config

import (
	"errors"
	"time"

	"github.com/thrasher-corp/bfxrest/log"
)

// Constants declared here are filenames, env names and default values
const (
	EnvPrefix         = "BFX"
	EnvConfigPassword = "BFX_CONFIG_PASSWORD"

	defaultTimeout = 15 * time.Second
)

var (
	errInvalidURL            = errors.New("invalid url")
	errIncompleteCredentials = errors.New("api key and secret must be set together")
	errInvalidTimeout        = errors.New("timeout must be positive")
	errInvalidProxy          = errors.New("invalid proxy")
	errInvalidRateLimit      = errors.New("invalid rate limit")
	errNoPassword            = errors.New("config is encrypted and no password is set")
)

// Config is the client configuration
type Config struct {
	URL           string          `json:"url" mapstructure:"url"`
	APIKey        string          `json:"apiKey" mapstructure:"api_key"`
	APISecret     string          `json:"apiSecret" mapstructure:"api_secret"`
	AuthToken     string          `json:"authToken" mapstructure:"auth_token"`
	Proxy         string          `json:"proxy" mapstructure:"proxy"`
	Timeout       time.Duration   `json:"timeout" mapstructure:"timeout"`
	AffiliateCode string          `json:"affiliateCode" mapstructure:"affiliate_code"`
	Verbose       bool            `json:"verbose" mapstructure:"verbose"`
	HTTPDebugging bool            `json:"httpDebugging" mapstructure:"http_debugging"`
	RateLimit     RateLimitConfig `json:"rateLimit" mapstructure:"rate_limit"`
	Logging       log.Config      `json:"logging" mapstructure:"logging"`
}

// RateLimitConfig caps every endpoint to Requests per Interval. The default
// zero value keeps the per endpoint exchange limits.
type RateLimitConfig struct {
	Interval time.Duration `json:"interval" mapstructure:"interval"`
	Requests int           `json:"requests" mapstructure:"requests"`
}
