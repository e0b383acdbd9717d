// Package router implements request routing as composable middleware
// for net/http.
//
// A Router holds one route slot per HTTP method and dispatches incoming
// requests to the first registered route whose path pattern matches.
// Unlike a terminal mux, the router is expressed as middleware: requests
// it does not claim flow through to a downstream handler untouched.
//
//	r := router.New()
//	r.HandleFunc(http.MethodGet, "/users/{name}", UserHandler)
//	r.HandleFunc(http.MethodPost, "/users", CreateUserHandler)
//	http.ListenAndServe(":8080", r)
//
// # Method Table
//
// Routes can be registered for DELETE, GET, HEAD, PATCH, POST and PUT.
// Registering a GET route also registers it for HEAD; net/http discards
// response bodies on HEAD, so handlers need no HEAD awareness. OPTIONS
// deliberately has no slot: it is answered by the AllowedMethods stage
// from the table as a whole. Registering any other method panics.
//
// Within a method, routes are tried strictly in registration order and
// the first matching pattern wins. Overlapping patterns are legal;
// register the more specific one first:
//
//	r.Get("/users/me", MeHandler)
//	r.Get("/users/{name}", UserHandler)
//
// # Path Parameters
//
// Templates use the pattern package syntax, including typed captures:
//
//	r.Get("/posts/{id:int}", PostHandler)
//
// Matched values are stored in the request context and read with Params
// or Param:
//
//	id, _ := router.Param(req, "id")
//	n := id.Int()
//
// SetParams exists for testing handlers in isolation, and CurrentRoute
// exposes the matched route to middleware.
//
// # Dispatch and Method Negotiation
//
// Routes returns the dispatch stage and AllowedMethods the method
// negotiation stage. Both are ordinary middleware and are mounted over
// whatever downstream handler the host application chooses:
//
//	h := router.Chain(fallback, r.Routes(), r.AllowedMethods())
//
// AllowedMethods answers 501 for methods outside the table, 200 with an
// Allow header field for OPTIONS, and 405 with the same Allow header
// field for requests whose path is routed under other methods only. A
// path routed nowhere passes through, leaving the 404 to the downstream
// handler. The Allow header field always lists methods in the order
// DELETE, GET, HEAD, PATCH, POST, PUT.
//
// Using the Router directly as an http.Handler is equivalent to mounting
// both stages over http.NotFoundHandler.
//
// # Middleware
//
// Use appends global middleware. It runs for matched requests only, in
// registration order, exactly once per request, before the route
// handler. Unmatched requests bypass the chain entirely, so a logging
// middleware added with Use never sees requests the router did not
// claim.
//
//	r.Use(routerhandlers.RequestID(routerhandlers.RequestIDConfig{}))
//
// The router never recovers from handler panics. Mount recovery
// middleware explicitly if crash containment is wanted.
//
// # Redirects
//
// Redirect registers a source template under all five verbs and answers
// with a redirect to the formatted destination:
//
//	r.Redirect("/people/{name}", "/users/{name}", nil)
//	r.Redirect("/u/{id:int}", "/users/{id:int}", nil, http.StatusMovedPermanently)
//
// The transformation function maps matched source values to destination
// values; nil passes them through unchanged. Redirect targets are
// prefixed with the router's base path (WithBasePath), so a router
// mounted under a prefix redirects into its own subtree.
//
// # Freezing
//
// A Router has a build phase and a serve phase. The first call to
// Routes, AllowedMethods, ServeHTTP, Serve or ServeTLS freezes it;
// registering routes or middleware afterwards panics. Freezing makes the
// serve phase read-only and safe for concurrent use without locking.
//
// # Serving
//
// Serve and ServeTLS run an http.Server with production-safe timeouts
// for the router. WithServerTimeouts overrides the defaults and WithH2C
// additionally accepts HTTP/2 cleartext upgrades:
//
//	r := router.New(router.WithH2C(true))
//	log.Fatal(r.Serve(":8080"))
//
// # Introspection
//
// RouteList returns every registered binding in canonical method order,
// ready for encoding; AllowedFor reports which methods have a route
// matching a given path.
package router
