package routerhandlers

import (
	"net/http"
	"strings"

	"github.com/go-strada/strada/router"
)

// CORSMethods returns a middleware that sets the Access-Control-Allow-Methods
// response header (Fetch Standard, CORS protocol) to the methods the router
// accepts for the request's path, in the router's canonical order. The header
// is left unset when no route matches the path.
//
// Mount it with Use to cover dispatched requests, or wrap the whole router
// with Chain to also cover OPTIONS preflight requests, which the dispatcher
// passes through.
func CORSMethods(r *router.Router) router.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if allowed := r.AllowedFor(req.URL.Path); len(allowed) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(allowed, ", "))
			}

			next.ServeHTTP(w, req)
		})
	}
}
