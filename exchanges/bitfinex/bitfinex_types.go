package bitfinex

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thrasher-corp/bfxrest/exchanges/request"
	"golang.org/x/net/proxy"
)

var (
	// ErrAuthenticationRequired is returned by authenticated calls made
	// without an API key pair or auth token
	ErrAuthenticationRequired = errors.New("authenticated request without credentials set")

	errUnsupportedProxyScheme = errors.New("unsupported proxy scheme")
	errInvalidURL             = errors.New("invalid url")
)

// Options configure a RESTv2 client. The zero value talks to DefaultURL
// without credentials.
type Options struct {
	URL       string
	APIKey    string
	APISecret string
	// AuthToken is used for authenticated calls when no key pair is set
	AuthToken string
	// Agent routes every connection through a proxy dialer
	Agent         proxy.Dialer
	Timeout       time.Duration
	AffiliateCode string
	Verbose       bool
	HTTPDebugging bool
	// RateLimit defaults to SetRateLimit()
	RateLimit request.RateLimitDefinitions
	Metrics   *request.Metrics
	UserAgent string
	// Dispatcher replaces the client's own request primitives
	Dispatcher Dispatcher
	// HTTPClient overrides the client built from Timeout and Agent
	HTTPClient *http.Client
}

// APIError is an exchange error reply of the form ["error", code, "message"]
type APIError struct {
	StatusCode int
	Code       int64
	Message    string
}

// Error implements error
func (e *APIError) Error() string {
	return fmt.Sprintf("bitfinex error %d: %s (HTTP status %d)", e.Code, e.Message, e.StatusCode)
}
