package router

import (
	"context"
	"net/http"

	"github.com/go-strada/strada/pattern"
)

// paramsContextKey is an unexported type for the single context key.
type paramsContextKey struct{}

// ctxKey is the single context key used to store both route and params.
var ctxKey = paramsContextKey{}

// paramsContext holds the matched route and extracted parameter values.
type paramsContext struct {
	route  *Route
	params pattern.Values
}

// Params returns the path parameters for the current request, if any.
func Params(r *http.Request) pattern.Values {
	if pc, ok := r.Context().Value(ctxKey).(*paramsContext); ok {
		return pc.params
	}
	return nil
}

// Param returns a single path parameter by name and a boolean indicating
// whether the parameter exists.
func Param(r *http.Request, name string) (pattern.Value, bool) {
	if pc, ok := r.Context().Value(ctxKey).(*paramsContext); ok && pc.params != nil {
		val, exists := pc.params[name]
		return val, exists
	}
	return pattern.Value{}, false
}

// CurrentRoute returns the matched route for the current request, if any.
// This only works when called inside the handler of the matched route or
// the global middleware chain, because the matched route is stored in
// the request context.
func CurrentRoute(r *http.Request) *Route {
	if pc, ok := r.Context().Value(ctxKey).(*paramsContext); ok {
		return pc.route
	}
	return nil
}

// SetParams sets the path parameters for the given request, returning
// the modified request. This is intended for testing route handlers.
func SetParams(r *http.Request, vals pattern.Values) *http.Request {
	var route *Route
	if pc, ok := r.Context().Value(ctxKey).(*paramsContext); ok {
		route = pc.route
	}
	return setParamsContext(r, route, vals)
}

// setParamsContext stores both the matched route and params in the
// request context using a single WithContext call. For routes without
// captures the context value is cached on the Route, avoiding a heap
// allocation per request after the first dispatch.
func setParamsContext(r *http.Request, route *Route, params pattern.Values) *http.Request {
	var pc *paramsContext
	if route != nil && len(params) == 0 {
		route.staticCtxOnce.Do(func() {
			route.staticCtx = &paramsContext{route: route}
		})
		pc = route.staticCtx
	} else {
		pc = &paramsContext{route: route, params: params}
	}
	ctx := context.WithValue(r.Context(), ctxKey, pc)
	return r.WithContext(ctx)
}
