package request

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors shared by requesters
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the request collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bfxrest_requests_total",
			Help: "Total REST requests by requester, endpoint group and status code",
		}, []string{"requester", "endpoint", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bfxrest_request_duration_seconds",
			Help:    "REST request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"requester", "endpoint"}),
	}
	if reg != nil {
		if err := reg.Register(m.requests); err != nil {
			return nil, err
		}
		if err := reg.Register(m.duration); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(name string, ep EndpointLimit, code int, took time.Duration) {
	if m == nil {
		return
	}
	status := "error"
	if code != 0 {
		status = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(name, ep.String(), status).Inc()
	m.duration.WithLabelValues(name, ep.String()).Observe(took.Seconds())
}
