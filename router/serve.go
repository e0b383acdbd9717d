package router

import (
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// serverTimeouts holds HTTP server timeout configuration.
type serverTimeouts struct {
	readHeader time.Duration
	read       time.Duration
	write      time.Duration
	idle       time.Duration
}

// defaultServerTimeouts returns the default timeout configuration.
// These guard against slowloris attacks and resource exhaustion.
func defaultServerTimeouts() *serverTimeouts {
	return &serverTimeouts{
		readHeader: 5 * time.Second,
		read:       15 * time.Second,
		write:      30 * time.Second,
		idle:       60 * time.Second,
	}
}

// ServeHTTP dispatches the request through the dispatch and method
// negotiation stages over a terminal 404. Implements http.Handler, so a
// Router mounts anywhere a handler does; hosts that want their own
// fallback mount Routes and AllowedMethods themselves instead.
// The first call freezes the router.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.composedOnce.Do(func() {
		r.composed = Chain(http.NotFoundHandler(), r.Routes(), r.AllowedMethods())
	})
	r.composed.ServeHTTP(w, req)
}

// Serve starts an HTTP server for the router on addr and freezes it.
// The server carries production-safe timeouts; WithServerTimeouts
// overrides them. With WithH2C the handler also accepts HTTP/2
// cleartext upgrades.
func (r *Router) Serve(addr string) error {
	r.freeze()

	h := http.Handler(r)
	if r.enableH2C {
		h = h2c.NewHandler(h, &http2.Server{})
	}

	timeouts := r.serverTimeouts
	if timeouts == nil {
		timeouts = defaultServerTimeouts()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: timeouts.readHeader,
		ReadTimeout:       timeouts.read,
		WriteTimeout:      timeouts.write,
		IdleTimeout:       timeouts.idle,
	}

	return srv.ListenAndServe()
}

// ServeTLS starts an HTTPS server for the router and freezes it.
// HTTP/2 is enabled automatically via ALPN, so WithH2C is not needed
// for TLS servers.
func (r *Router) ServeTLS(addr, certFile, keyFile string) error {
	r.freeze()

	timeouts := r.serverTimeouts
	if timeouts == nil {
		timeouts = defaultServerTimeouts()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: timeouts.readHeader,
		ReadTimeout:       timeouts.read,
		WriteTimeout:      timeouts.write,
		IdleTimeout:       timeouts.idle,
	}

	return srv.ListenAndServeTLS(certFile, keyFile)
}
