package router

import (
	"net/http"
	"sync"

	"github.com/go-strada/strada/pattern"
)

// Route is a single method+pattern binding. Routes are created through
// registration only and are immutable once the router is frozen.
type Route struct {
	method  string
	pattern *pattern.Pattern
	handler http.Handler

	// wrapped is the handler with the global middleware chain applied,
	// precomputed when the router freezes.
	wrapped http.Handler

	// staticCtx caches the context value for routes without captures
	// to avoid a heap allocation per request after the first dispatch.
	staticCtx     *paramsContext
	staticCtxOnce sync.Once
}

// Method returns the HTTP method the route is bound to.
func (rt *Route) Method() string {
	return rt.method
}

// Pattern returns the route's compiled path pattern.
func (rt *Route) Pattern() *pattern.Pattern {
	return rt.pattern
}

// Template returns the route's original template string.
func (rt *Route) Template() string {
	return rt.pattern.Template()
}

// RouteInfo describes a registered binding for introspection and export.
type RouteInfo struct {
	// Method is the HTTP method of the binding.
	Method string `json:"method" yaml:"method"`

	// Template is the path template of the binding.
	Template string `json:"template" yaml:"template"`
}

// RouteList returns the registered bindings in canonical method order,
// registration order within each method. HEAD bindings implied by GET
// registrations and redirect sources are included.
func (r *Router) RouteList() []RouteInfo {
	infos := make([]RouteInfo, 0, r.table.size())
	r.table.iterate(func(rt *Route) {
		infos = append(infos, RouteInfo{Method: rt.method, Template: rt.pattern.Template()})
	})
	return infos
}
