package router

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-strada/strada/pattern"
)

// Router registers method+pattern bindings and global middleware during
// a build phase, then serves them as middleware over a downstream
// http.Handler.
//
// It implements the http.Handler interface, so it can also be mounted
// directly:
//
//	r := router.New()
//	r.HandleFunc(http.MethodGet, "/users/{name}", handler)
//	http.ListenAndServe(":8080", r)
type Router struct {
	basePath       string
	enableH2C      bool
	serverTimeouts *serverTimeouts

	table       methodTable
	middlewares []Middleware

	// frozen flips on the first call to Routes, AllowedMethods,
	// ServeHTTP or Serve; registration panics afterwards.
	frozen     atomic.Bool
	freezeOnce sync.Once

	// composed caches the ServeHTTP composition.
	composed     http.Handler
	composedOnce sync.Once
}

// Option configures a Router during construction.
type Option func(*Router)

// WithBasePath sets the path prefix under which the router is mounted.
// It qualifies redirect targets only; matching is unaffected, so pair it
// with http.StripPrefix or an equivalent at the mount point.
// Default "/".
func WithBasePath(prefix string) Option {
	return func(r *Router) {
		r.basePath = prefix
	}
}

// WithH2C enables HTTP/2 cleartext support on Serve.
// Only use in development or behind a trusted load balancer; do not
// enable on public-facing servers without TLS.
func WithH2C(enable bool) Option {
	return func(r *Router) {
		r.enableH2C = enable
	}
}

// WithServerTimeouts configures the HTTP server timeouts used by Serve
// and ServeTLS.
//
// Defaults (if not set):
//
//	ReadHeaderTimeout: 5s  - Time to read request headers
//	ReadTimeout:       15s - Time to read entire request
//	WriteTimeout:      30s - Time to write response
//	IdleTimeout:       60s - Keep-alive idle time
func WithServerTimeouts(readHeader, read, write, idle time.Duration) Option {
	return func(r *Router) {
		r.serverTimeouts = &serverTimeouts{
			readHeader: readHeader,
			read:       read,
			write:      write,
			idle:       idle,
		}
	}
}

// New returns a new router instance. Every method slot starts empty, so
// a fresh router matches nothing and passes every request through.
func New(opts ...Option) *Router {
	r := &Router{
		basePath: "/",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers handler for the given method and path template and
// returns the created route. The method must be one of DELETE, GET,
// HEAD, PATCH, POST or PUT; GET registrations are mirrored to HEAD.
//
// Handle panics on an unknown method, an invalid template, a nil
// handler, or registration after the router has been frozen. These are
// programming errors and fail fast during the build phase.
func (r *Router) Handle(method, template string, handler http.Handler) *Route {
	if r.frozen.Load() {
		panic(fmt.Sprintf("router: cannot register route %s %s after the router has started serving.\n"+
			"Routes must be registered before calling Routes, AllowedMethods, ServeHTTP or Serve.", method, template))
	}
	if !routable(method) {
		panic(fmt.Sprintf("router: cannot register route %s %s: method has no slot in the table", method, template))
	}
	if handler == nil {
		panic(fmt.Sprintf("router: nil handler for route %s %s", method, template))
	}

	rt := r.bind(method, pattern.MustCompile(template), handler)
	if method == http.MethodGet {
		r.bind(http.MethodHead, rt.pattern, handler)
	}
	return rt
}

// HandleFunc registers a handler function for the given method and path
// template.
func (r *Router) HandleFunc(method, template string, f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handle(method, template, http.HandlerFunc(f))
}

// Get registers handler for GET requests on the given template. The
// binding also answers HEAD: net/http discards response bodies on HEAD,
// so handlers need no HEAD awareness.
func (r *Router) Get(template string, handler http.Handler) *Route {
	return r.Handle(http.MethodGet, template, handler)
}

// Post registers handler for POST requests on the given template.
func (r *Router) Post(template string, handler http.Handler) *Route {
	return r.Handle(http.MethodPost, template, handler)
}

// Put registers handler for PUT requests on the given template.
func (r *Router) Put(template string, handler http.Handler) *Route {
	return r.Handle(http.MethodPut, template, handler)
}

// Patch registers handler for PATCH requests on the given template.
func (r *Router) Patch(template string, handler http.Handler) *Route {
	return r.Handle(http.MethodPatch, template, handler)
}

// Delete registers handler for DELETE requests on the given template.
func (r *Router) Delete(template string, handler http.Handler) *Route {
	return r.Handle(http.MethodDelete, template, handler)
}

// bind appends a pre-validated binding to the table.
func (r *Router) bind(method string, p *pattern.Pattern, handler http.Handler) *Route {
	rt := &Route{method: method, pattern: p, handler: handler}
	r.table.add(rt)
	return rt
}

// Use appends middleware to the global chain. The chain runs for matched
// requests only, in registration order, exactly once per request, before
// the route handler. Unmatched requests bypass it entirely.
func (r *Router) Use(mw ...Middleware) {
	if r.frozen.Load() {
		panic("router: cannot add middleware after the router has started serving")
	}
	r.middlewares = append(r.middlewares, mw...)
}

// freeze marks the router immutable and precomputes the wrapped handler
// for every route. Safe to call more than once.
func (r *Router) freeze() {
	r.freezeOnce.Do(func() {
		r.frozen.Store(true)
		r.table.iterate(func(rt *Route) {
			rt.wrapped = Chain(rt.handler, r.middlewares...)
		})
	})
}

// Frozen reports whether the router has been frozen and no longer
// accepts registration.
func (r *Router) Frozen() bool {
	return r.frozen.Load()
}
