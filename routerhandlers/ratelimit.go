package routerhandlers

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/go-strada/strada/router"
)

// ErrInvalidRate is returned when RateLimitConfig.Rate is not greater
// than zero.
var ErrInvalidRate = errors.New("ratelimit: rate must be greater than zero")

// ErrInvalidBurst is returned when RateLimitConfig.Burst is not greater
// than zero.
var ErrInvalidBurst = errors.New("ratelimit: burst must be greater than zero")

// RateLimitConfig configures the RateLimit middleware behaviour.
type RateLimitConfig struct {
	// Rate is the sustained number of requests allowed per client per
	// second. Must be greater than zero.
	Rate float64

	// Burst is the maximum number of requests a client may send at once.
	// Must be greater than zero.
	Burst int

	// KeyFunc derives the client key from the request. Defaults to the
	// host portion of the request's remote address. Behind a reverse
	// proxy the remote address is the proxy's; supply a KeyFunc reading
	// the appropriate forwarded header in that case.
	KeyFunc func(r *http.Request) string

	// IdleTimeout is how long an idle client's limiter is retained
	// before eviction. Defaults to one hour.
	IdleTimeout time.Duration
}

// RateLimit returns a middleware that applies a per-client token bucket.
// Requests exceeding the client's budget receive 429 Too Many Requests.
// Limiters for clients idle longer than IdleTimeout are evicted lazily.
//
// It returns ErrInvalidRate or ErrInvalidBurst when the corresponding
// config field is not greater than zero.
func RateLimit(cfg RateLimitConfig) (router.Middleware, error) {
	if cfg.Rate <= 0 {
		return nil, ErrInvalidRate
	}

	if cfg.Burst <= 0 {
		return nil, ErrInvalidBurst
	}

	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = clientAddress
	}

	idleTimeout := cfg.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = time.Hour
	}

	clients := &clientLimiters{
		val:       make(map[string]*clientLimiter),
		rate:      rate.Limit(cfg.Rate),
		burst:     cfg.Burst,
		ttl:       idleTimeout,
		lastSweep: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !clients.fetch(keyFunc(r)).Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// clientLimiter tracks one client's limiter and last seen time.
type clientLimiter struct {
	lastSeen time.Time
	limiter  *rate.Limiter
}

// clientLimiters maps client keys to their limiters.
type clientLimiters struct {
	mu        sync.Mutex
	val       map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

// fetch retrieves the limiter for the given key, creating one if the client
// has not been seen. At most once per ttl it also sweeps out clients whose
// last request is older than ttl.
func (cl *clientLimiters) fetch(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	if now.Sub(cl.lastSweep) > cl.ttl {
		for k, c := range cl.val {
			if now.Sub(c.lastSeen) > cl.ttl {
				delete(cl.val, k)
			}
		}
		cl.lastSweep = now
	}

	c, ok := cl.val[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(cl.rate, cl.burst)}
		cl.val[key] = c
	}

	c.lastSeen = now

	return c.limiter
}

// clientAddress returns the host portion of the request's remote address.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
