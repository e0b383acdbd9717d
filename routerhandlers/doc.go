// Package routerhandlers provides HTTP middleware for the router package.
//
// All middleware here is optional and independent; the router never mounts
// any of it on its own. Middleware mounted with Router.Use runs only on
// requests the router dispatched, so unmatched requests and OPTIONS pass it
// by. To observe every request, wrap the router itself:
//
//	h := router.Chain(r, routerhandlers.Logging(routerhandlers.LoggingConfig{}))
//
// # Rate Limit Middleware
//
// RateLimit applies a token bucket per client, keyed by remote address by
// default. Requests over budget receive 429 Too Many Requests.
//
//	mw, err := routerhandlers.RateLimit(routerhandlers.RateLimitConfig{
//	    Rate:  5,
//	    Burst: 20,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Use(mw)
//
// # Metrics Middleware
//
// Metrics records a request counter and a duration histogram in a Prometheus
// registry, labelled by method and the matched route template. Serve the
// registry with promhttp as usual.
//
//	mw, err := routerhandlers.Metrics(routerhandlers.MetricsConfig{
//	    Namespace: "myapp",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Use(mw)
//
// # Tracing Middleware
//
// Tracing starts an OpenTelemetry server span per request, named after the
// matched route template, and records the response status on the span. With
// no config it uses the global tracer provider and propagator.
//
//	r.Use(routerhandlers.Tracing(routerhandlers.TracingConfig{}))
package routerhandlers
