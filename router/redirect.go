package router

import (
	"net/http"

	"github.com/go-strada/strada/pattern"
)

// Redirect registers a redirect from the src template to the dst
// template under all five verbs, GET also answering HEAD. On each hit
// the values matched from src are transformed by f, formatted into dst,
// and the response redirects to the result prefixed with the router's
// base path.
//
// A nil f passes the matched values through unchanged, which requires
// dst's captures to be a subset of src's:
//
//	r.Redirect("/people/{name}", "/users/{name}", nil)
//
// The transformation must be a pure function producing a complete,
// valid value set for dst. A formatting failure at request time is a
// programming error and is answered with 500.
//
// The redirect status is 302 Found unless a code is given:
//
//	r.Redirect("/old", "/new", nil, http.StatusMovedPermanently)
func (r *Router) Redirect(src, dst string, f func(pattern.Values) pattern.Values, code ...int) {
	status := http.StatusFound
	if len(code) > 0 {
		status = code[0]
	}

	target := pattern.MustCompile(dst)
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		vals := Params(req)
		if f != nil {
			vals = f(vals)
		}

		location, err := target.Format(vals)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, req, joinPath(r.basePath, location), status)
	})

	r.Get(src, handler)
	r.Post(src, handler)
	r.Put(src, handler)
	r.Patch(src, handler)
	r.Delete(src, handler)
}
