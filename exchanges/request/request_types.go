package request

import (
	"fmt"
	"io"
	"net/http"
)

const (
	userAgent = "User-Agent"
	// DefaultUserAgent is sent when the requester has no user agent set
	DefaultUserAgent = "bfxrest/1.0"
)

// Requester struct for the request client
type Requester struct {
	name               string
	httpClient         *http.Client
	limiter            RateLimitDefinitions
	userAgent          string
	metrics            *Metrics
	disableRateLimiter int32
}

// RequesterOption is a function option that can be applied to a Requester
type RequesterOption func(*Requester)

// Item is a temp item for requests
type Item struct {
	Method         string
	Path           string
	Headers        map[string]string
	Body           io.Reader
	Result         interface{}
	Verbose        bool
	HTTPDebugging  bool
	HeaderResponse *http.Header
}

// Generate defines a closure for functionality outside of the requester to
// generate a new *http.Request on every attempt.
type Generate func() (*Item, error)

// HTTPError is returned when the server answers with a status outside of 2xx
type HTTPError struct {
	Requester  string
	StatusCode int
	Body       []byte
}

// Error implements error
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s unsuccessful HTTP status code: %d raw response: %s",
		e.Requester,
		e.StatusCode,
		string(e.Body))
}
