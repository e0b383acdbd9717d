package router

import "net/http"

// methodOrder lists the routable methods in canonical order. The Allow
// header field and RouteList report methods in this order.
var methodOrder = [...]string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// methodTable holds one route slot per routable method. Each slot keeps
// its routes in registration order; dispatch tries them front to back.
// OPTIONS deliberately has no slot.
type methodTable struct {
	delete []*Route
	get    []*Route
	head   []*Route
	patch  []*Route
	post   []*Route
	put    []*Route
}

// slot returns the route list for the given method. Methods without a
// slot return nil, which no dispatch can match.
func (t *methodTable) slot(method string) []*Route {
	switch method {
	case http.MethodDelete:
		return t.delete
	case http.MethodGet:
		return t.get
	case http.MethodHead:
		return t.head
	case http.MethodPatch:
		return t.patch
	case http.MethodPost:
		return t.post
	case http.MethodPut:
		return t.put
	default:
		return nil
	}
}

// add appends a route to its method's slot. The caller has validated the
// method via routable.
func (t *methodTable) add(rt *Route) {
	switch rt.method {
	case http.MethodDelete:
		t.delete = append(t.delete, rt)
	case http.MethodGet:
		t.get = append(t.get, rt)
	case http.MethodHead:
		t.head = append(t.head, rt)
	case http.MethodPatch:
		t.patch = append(t.patch, rt)
	case http.MethodPost:
		t.post = append(t.post, rt)
	case http.MethodPut:
		t.put = append(t.put, rt)
	}
}

// size returns the total number of routes across all slots.
func (t *methodTable) size() int {
	return len(t.delete) + len(t.get) + len(t.head) +
		len(t.patch) + len(t.post) + len(t.put)
}

// iterate visits every route, one method slot at a time in canonical
// order, registration order within a slot.
func (t *methodTable) iterate(f func(*Route)) {
	for _, method := range methodOrder {
		for _, rt := range t.slot(method) {
			f(rt)
		}
	}
}

// routable reports whether the method has a slot in the table.
func routable(method string) bool {
	switch method {
	case http.MethodDelete, http.MethodGet, http.MethodHead,
		http.MethodPatch, http.MethodPost, http.MethodPut:
		return true
	default:
		return false
	}
}

// recognized reports whether AllowedMethods understands the method: the
// six routable methods plus OPTIONS. Anything else draws 501.
func recognized(method string) bool {
	return method == http.MethodOptions || routable(method)
}
