package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/gofrs/uuid"
	"github.com/thrasher-corp/bfxrest/common"
	"github.com/thrasher-corp/bfxrest/log"
	"golang.org/x/net/proxy"
)

var (
	// ErrRequestSystemIsNil is returned when a method is called on a nil
	// requester
	ErrRequestSystemIsNil = errors.New("request system is nil")

	errRequestFunctionIsNil   = errors.New("request function is nil")
	errRequestItemNil         = errors.New("request item is nil")
	errInvalidPath            = errors.New("invalid path")
	errHeaderResponseMapIsNil = errors.New("header response map is nil")
	errHTTPClientIsNil        = errors.New("http client is nil")
	errServiceNameUnset       = errors.New("service name unset")
)

// New returns a new Requester
func New(name string, httpRequester *http.Client, opts ...RequesterOption) (*Requester, error) {
	if name == "" {
		return nil, errServiceNameUnset
	}
	if httpRequester == nil {
		return nil, errHTTPClientIsNil
	}
	r := &Requester{
		name:       name,
		httpClient: httpRequester,
		userAgent:  DefaultUserAgent,
		limiter:    NewBasicRateLimit(0, 0),
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// WithLimiter applies the rate limit definitions to the requester
func WithLimiter(def RateLimitDefinitions) RequesterOption {
	return func(r *Requester) {
		r.limiter = def
	}
}

// WithUserAgent overrides the default user agent
func WithUserAgent(ua string) RequesterOption {
	return func(r *Requester) {
		r.userAgent = ua
	}
}

// WithMetrics records request counts and latency to m
func WithMetrics(m *Metrics) RequesterOption {
	return func(r *Requester) {
		r.metrics = m
	}
}

// NewHTTPClient returns a HTTP client for a requester. A non-nil dialer routes
// every connection through it, e.g. a SOCKS5 proxy.
func NewHTTPClient(timeout time.Duration, dialer proxy.Dialer) (*http.Client, error) {
	if dialer == nil {
		return common.NewHTTPClientWithTimeout(timeout), nil
	}
	return common.NewHTTPClientWithDialer(timeout, dialer)
}

// Name returns the requester name
func (r *Requester) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// SendPayload handles sending HTTP/HTTPS requests
func (r *Requester) SendPayload(ctx context.Context, ep EndpointLimit, newRequest Generate) error {
	if r == nil {
		return ErrRequestSystemIsNil
	}
	if newRequest == nil {
		return errRequestFunctionIsNil
	}
	if err := r.InitiateRateLimit(ctx, ep); err != nil {
		return err
	}
	p, err := newRequest()
	if err != nil {
		return err
	}
	start := time.Now()
	code, err := r.doRequest(ctx, p)
	r.metrics.observe(r.name, ep, code, time.Since(start))
	return err
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if r == nil {
		return nil, ErrRequestSystemIsNil
	}

	if i == nil {
		return nil, errRequestItemNil
	}

	if i.Path == "" {
		return nil, errInvalidPath
	}

	if i.HeaderResponse != nil && *i.HeaderResponse == nil {
		return nil, errHeaderResponseMapIsNil
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, i.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}

	if r.userAgent != "" && req.Header.Get(userAgent) == "" {
		req.Header.Add(userAgent, r.userAgent)
	}

	return req, nil
}

// redactedHeaders are credential headers whose values are never logged
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Bfx-Apikey":    true,
	"Bfx-Signature": true,
	"Bfx-Token":     true,
}

// headerLogValue returns the header values as they should appear in verbose
// logs
func headerLogValue(key string, values []string) string {
	if redactedHeaders[http.CanonicalHeaderKey(key)] {
		return "[redacted]"
	}
	return fmt.Sprint(values)
}

// doRequest performs a HTTP/HTTPS request with the supplied params and
// returns the status code seen, or zero when no response arrived
func (r *Requester) doRequest(ctx context.Context, p *Item) (int, error) {
	req, err := p.validateRequest(ctx, r)
	if err != nil {
		return 0, err
	}

	verbose := IsVerbose(ctx, p.Verbose)
	var id string
	if verbose {
		if u, err := uuid.NewV4(); err == nil {
			id = u.String()
		}
		log.Debugf(log.RequestSys, "%s [%s] request path: %s", r.name, id, p.Path)
		for k, d := range req.Header {
			log.Debugf(log.RequestSys, "%s [%s] request header [%s]: %s", r.name, id, k, headerLogValue(k, d))
		}
		log.Debugf(log.RequestSys, "%s [%s] request type: %s", r.name, id, p.Method)
	}

	if p.HTTPDebugging {
		dump, err := httputil.DumpRequestOut(req, true)
		if err != nil {
			log.Errorf(log.RequestSys, "DumpRequest invalid request: %v", err)
		}
		log.Debugf(log.RequestSys, "DumpRequest:\n%s", dump)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if p.HeaderResponse != nil {
		for k, v := range resp.Header {
			(*p.HeaderResponse)[k] = v
		}
	}

	if p.HTTPDebugging {
		dump, err := httputil.DumpResponse(resp, false)
		if err != nil {
			log.Errorf(log.RequestSys, "DumpResponse invalid response: %v:", err)
		}
		log.Debugf(log.RequestSys, "DumpResponse Headers (%v):\n%s", p.Path, dump)
		log.Debugf(log.RequestSys, "DumpResponse Body (%v):\n %s", p.Path, string(contents))
	}

	if verbose {
		log.Debugf(log.RequestSys,
			"%s [%s] HTTP status: %s, Code: %v",
			r.name,
			id,
			resp.Status,
			resp.StatusCode)
		if !p.HTTPDebugging {
			log.Debugf(log.RequestSys, "%s [%s] raw response: %s", r.name, id, string(contents))
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, &HTTPError{
			Requester:  r.name,
			StatusCode: resp.StatusCode,
			Body:       contents,
		}
	}

	if p.Result != nil {
		return resp.StatusCode, json.Unmarshal(contents, p.Result)
	}
	return resp.StatusCode, nil
}
