package routerhandlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-strada/strada/router"
)

// DefaultDurationBuckets are histogram boundaries for request duration in
// seconds, tuned for typical HTTP handler latencies.
var DefaultDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// unmatchedRoute is the route label value for requests the router did not
// dispatch. A fixed sentinel keeps raw request paths out of the label set,
// which would otherwise grow without bound.
const unmatchedRoute = "_unmatched"

// MetricsConfig configures the Metrics middleware behaviour.
type MetricsConfig struct {
	// Registerer receives the middleware's collectors.
	// Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// Namespace prefixes the metric names, e.g. "myapp" produces
	// myapp_http_requests_total. Empty means no prefix.
	Namespace string

	// DurationBuckets overrides the request duration histogram
	// boundaries, in seconds. Defaults to DefaultDurationBuckets.
	DurationBuckets []float64
}

// Metrics returns a middleware that records two collectors per request:
// an http_requests_total counter labelled by method, route template and
// status code, and an http_request_duration_seconds histogram labelled by
// method and route template. The route label comes from the matched route;
// requests that never matched are labelled with the "_unmatched" sentinel.
//
// It returns an error when a collector cannot be registered, typically
// because the registerer already holds a collector with the same name.
func Metrics(cfg MetricsConfig) (router.Middleware, error) {
	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	buckets := cfg.DurationBuckets
	if len(buckets) == 0 {
		buckets = DefaultDurationBuckets
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request processing duration in seconds.",
		Buckets:   buckets,
	}, []string{"method", "route"})

	if err := registerer.Register(requests); err != nil {
		return nil, fmt.Errorf("metrics: register request counter: %w", err)
	}

	if err := registerer.Register(duration); err != nil {
		return nil, fmt.Errorf("metrics: register duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseRecorder(w)

			next.ServeHTTP(rw, r)

			route := unmatchedRoute
			if rt := router.CurrentRoute(r); rt != nil {
				route = rt.Template()
			}

			requests.WithLabelValues(r.Method, route, strconv.Itoa(rw.Status())).Inc()
			duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}, nil
}
