package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/bfxrest/exchanges/bitfinex"
)

const testYAML = `
url: https://api-pub.bitfinex.com
api_key: key
api_secret: secret
timeout: 30s
affiliate_code: aff
verbose: true
rate_limit:
  interval: 10s
  requests: 5
logging:
  level: debug
  format: json
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, bitfinex.DefaultURL, c.URL)
	assert.Equal(t, defaultTimeout, c.Timeout)
	assert.Zero(t, c.RateLimit, "no cap should be set by default")
	assert.Len(t, c.RateLimits(), len(bitfinex.SetRateLimit()), "defaults should keep the exchange limits")
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Equal(t, "stdout", c.Logging.Output)
	assert.Empty(t, c.APIKey)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	c, err := Load(writeFile(t, "config.yaml", []byte(testYAML)))
	require.NoError(t, err)
	assert.Equal(t, "https://api-pub.bitfinex.com", c.URL)
	assert.Equal(t, "key", c.APIKey)
	assert.Equal(t, "secret", c.APISecret)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.Equal(t, "aff", c.AffiliateCode)
	assert.True(t, c.Verbose)
	assert.Equal(t, RateLimitConfig{Interval: 10 * time.Second, Requests: 5}, c.RateLimit)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, "stdout", c.Logging.Output, "unset fields should keep their defaults")

	c, err = Load(writeFile(t, "config.json", []byte(`{"auth_token":"tok","timeout":"5s"}`)))
	require.NoError(t, err)
	assert.Equal(t, "tok", c.AuthToken)
	assert.Equal(t, 5*time.Second, c.Timeout)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BFX_API_KEY", "envkey")
	t.Setenv("BFX_API_SECRET", "envsecret")
	t.Setenv("BFX_PROXY", "socks5://127.0.0.1:1080")
	t.Setenv("BFX_RATE_LIMIT_REQUESTS", "7")
	c, err := Load(writeFile(t, "config.yaml", []byte(testYAML)))
	require.NoError(t, err)
	assert.Equal(t, "envkey", c.APIKey, "environment should override the file")
	assert.Equal(t, "envsecret", c.APISecret)
	assert.Equal(t, "socks5://127.0.0.1:1080", c.Proxy)
	assert.Equal(t, 7, c.RateLimit.Requests)
}

func TestLoadEncrypted(t *testing.T) {
	enc, err := EncryptConfigData([]byte(testYAML), []byte("hunter2"))
	require.NoError(t, err)
	path := writeFile(t, "config.yaml.enc", enc)

	_, err = Load(path)
	require.ErrorIs(t, err, errNoPassword)

	t.Setenv(EnvConfigPassword, "wrong")
	_, err = Load(path)
	require.ErrorIs(t, err, errDecryptionFailed)

	t.Setenv(EnvConfigPassword, "hunter2")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key", c.APIKey)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.json", []byte(`{"url":`)))
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", []byte("api_key: only")))
	require.ErrorIs(t, err, errIncompleteCredentials)
}

func TestReadSkipsValidation(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bad_url.yaml", []byte("url: test\n"))
	_, err := Load(path)
	require.ErrorIs(t, err, errInvalidURL)

	c, err := Read(path)
	require.NoError(t, err, "Read should leave validation to the caller")
	assert.Equal(t, "test", c.URL)
	c.URL = bitfinex.DefaultURL
	require.NoError(t, c.Validate())

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "yaml", configType("a/config.yaml"))
	assert.Equal(t, "yml", configType("config.yml.enc"))
	assert.Equal(t, "toml", configType("config.toml"))
	assert.Equal(t, "json", configType("config"))
	assert.Equal(t, "json", configType("config.dat"))
}

func validConfig() Config {
	return Config{URL: bitfinex.DefaultURL, Timeout: time.Second}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"valid", func(*Config) {}, nil},
		{"credentials", func(c *Config) { c.APIKey, c.APISecret = "k", "s" }, nil},
		{"socks5h", func(c *Config) { c.Proxy = "socks5h://localhost:9050" }, nil},
		{"bad url", func(c *Config) { c.URL = "::" }, errInvalidURL},
		{"relative url", func(c *Config) { c.URL = "test" }, errInvalidURL},
		{"ftp url", func(c *Config) { c.URL = "ftp://api.bitfinex.com" }, errInvalidURL},
		{"key only", func(c *Config) { c.APIKey = "k" }, errIncompleteCredentials},
		{"secret only", func(c *Config) { c.APISecret = "s" }, errIncompleteCredentials},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, errInvalidTimeout},
		{"http proxy", func(c *Config) { c.Proxy = "http://localhost:8080" }, errInvalidProxy},
		{"bad proxy", func(c *Config) { c.Proxy = "::" }, errInvalidProxy},
		{"negative rate", func(c *Config) { c.RateLimit.Requests = -1 }, errInvalidRateLimit},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := validConfig()
			tc.mutate(&c)
			err := c.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Parallel()
	c := validConfig()
	c.APIKey, c.APISecret = "k", "s"
	c.Proxy = "socks5://127.0.0.1:1080"
	c.RateLimit = RateLimitConfig{Interval: time.Minute, Requests: 60}
	o, err := c.ClientOptions()
	require.NoError(t, err)
	assert.Equal(t, "k", o.APIKey)
	assert.Equal(t, "s", o.APISecret)
	assert.Equal(t, time.Second, o.Timeout)
	require.NotNil(t, o.Agent)
	require.NotEmpty(t, o.RateLimit)
	for _, l := range o.RateLimit {
		assert.InDelta(t, 1.0, float64(l.Limit()), 1e-9, "a configured cap should be shared by every endpoint")
	}

	r, err := bitfinex.New(o)
	require.NoError(t, err)
	assert.True(t, r.UsesAgent())
	assert.Equal(t, bitfinex.DefaultURL, r.URL())

	c.Proxy = "socks5://"
	_, err = c.ClientOptions()
	require.Error(t, err)
}

func TestRateLimits(t *testing.T) {
	t.Parallel()
	c := validConfig()
	assert.Len(t, c.RateLimits(), len(bitfinex.SetRateLimit()), "no cap should keep the exchange limits")
	c.RateLimit = RateLimitConfig{Interval: time.Second, Requests: 2}
	for _, l := range c.RateLimits() {
		assert.InDelta(t, 2.0, float64(l.Limit()), 1e-9)
	}
}
