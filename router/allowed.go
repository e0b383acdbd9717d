package router

import (
	"net/http"
	"strings"
)

// AllowedFor returns the methods with at least one route matching path,
// in canonical order (DELETE, GET, HEAD, PATCH, POST, PUT). HEAD
// appears whenever GET does, because GET registrations are mirrored to
// HEAD. Probing never mutates the table, so repeated calls for the same
// path give the same answer.
func (r *Router) AllowedFor(path string) []string {
	path = cleanPath(path)
	var allowed []string
	for _, method := range methodOrder {
		for _, rt := range r.table.slot(method) {
			if _, ok := rt.pattern.Match(path); ok {
				allowed = append(allowed, method)
				break
			}
		}
	}
	return allowed
}

// AllowedMethods returns the method negotiation middleware, usually
// mounted downstream of Routes. The first call freezes the router.
//
// For each request, in order:
//   - a method outside the table and not OPTIONS draws 501 Not
//     Implemented regardless of path;
//   - a path with no routes under any method is passed to next untouched
//     (the 404 is the downstream handler's to give);
//   - OPTIONS draws 200 with an empty body and the Allow header field
//     listing the methods routed for the path;
//   - a method with a route on the path is passed to next untouched
//     (the dispatch stage is expected to have claimed it upstream);
//   - anything else draws 405 Method Not Allowed with the same Allow
//     header field, per RFC 9110 Section 15.5.6.
func (r *Router) AllowedMethods() Middleware {
	r.freeze()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !recognized(req.Method) {
				http.Error(w, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
				return
			}

			allowed := r.AllowedFor(req.URL.Path)
			if len(allowed) == 0 {
				next.ServeHTTP(w, req)
				return
			}

			if req.Method == http.MethodOptions {
				w.Header().Set("Allow", strings.Join(allowed, ", "))
				w.WriteHeader(http.StatusOK)
				return
			}

			for _, method := range allowed {
				if method == req.Method {
					next.ServeHTTP(w, req)
					return
				}
			}

			// RFC 9110 Section 15.5.6: the origin server MUST generate an
			// Allow header field in a 405 response.
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		})
	}
}
