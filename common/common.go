package common

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Vars for common.go operations
var (
	ErrNilPointer = errors.New("nil pointer")
)

// ContextDialer is satisfied by net.Dialer and by proxy dialers that honour
// context cancellation
type ContextDialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Dialer is the minimal dialer interface shared with golang.org/x/net/proxy
type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
}

// NewHTTPClientWithTimeout initialises a new HTTP client and its underlying
// transport IdleConnTimeout with the specified timeout duration
func NewHTTPClientWithTimeout(t time.Duration) *http.Client {
	tr := &http.Transport{
		// Added IdleConnTimeout to reduce the time of idle connections which
		// could potentially slow macOS reconnection when there is a sudden
		// network disconnection/issue
		IdleConnTimeout: t,
		Proxy:           http.ProxyFromEnvironment,
	}
	h := &http.Client{
		Transport: tr,
		Timeout:   t}
	return h
}

// NewHTTPClientWithDialer returns a HTTP client whose transport dials every
// connection through d. Environment proxies are ignored as d is the proxy.
func NewHTTPClientWithDialer(t time.Duration, d Dialer) (*http.Client, error) {
	if d == nil {
		return nil, ErrNilPointer
	}
	h := NewHTTPClientWithTimeout(t)
	tr := h.Transport.(*http.Transport)
	tr.Proxy = nil
	if cd, ok := d.(ContextDialer); ok {
		tr.DialContext = cd.DialContext
	} else {
		tr.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return d.Dial(network, addr)
		}
	}
	return h, nil
}
