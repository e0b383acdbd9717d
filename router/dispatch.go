package router

import (
	"net/http"

	"github.com/go-strada/strada/pattern"
)

// Routes returns the dispatch middleware. The first call freezes the
// router.
//
// The slot for the request method is tried in registration order and
// the first matching route wins: its parameters are attached to the
// request context and the global middleware chain runs, innermost the
// route handler. Exactly one route handler runs per request.
//
// Requests with no matching route, requests with methods outside the
// table, and OPTIONS requests are passed to next untouched. Handler
// panics propagate; the dispatcher never recovers.
func (r *Router) Routes() Middleware {
	r.freeze()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			// Normalize the candidate path per RFC 3986 Section 5.2.4
			// (remove dot segments). The request itself is rewritten only
			// when a route matches; unmatched requests pass downstream
			// unmodified.
			path := cleanPath(req.URL.Path)

			rt, params, ok := r.match(req.Method, path)
			if !ok {
				next.ServeHTTP(w, req)
				return
			}

			if path != req.URL.Path {
				u := *req.URL
				u.Path = path
				u.RawPath = ""
				req = req.Clone(req.Context())
				req.URL = &u
			}

			req = setParamsContext(req, rt, params)
			rt.wrapped.ServeHTTP(w, req)
		})
	}
}

// match finds the first route in the method's slot whose pattern matches
// path. Methods without a slot never match.
func (r *Router) match(method, path string) (*Route, pattern.Values, bool) {
	for _, rt := range r.table.slot(method) {
		if vals, ok := rt.pattern.Match(path); ok {
			return rt, vals, true
		}
	}
	return nil, nil, false
}
