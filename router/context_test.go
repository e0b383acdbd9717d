package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-strada/strada/pattern"
)

func TestParams(t *testing.T) {
	t.Run("nil without dispatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
		assert.Nil(t, Params(req))
	})

	t.Run("populated after dispatch", func(t *testing.T) {
		var vals pattern.Values

		r := New()
		r.HandleFunc(http.MethodGet, "/users/{name}", func(_ http.ResponseWriter, req *http.Request) {
			vals = Params(req)
		})
		Chain(downstream(), r.Routes()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/alice", nil))

		require.NotNil(t, vals)
		assert.Equal(t, "alice", vals["name"].String())
	})

	t.Run("nil for routes without captures", func(t *testing.T) {
		var vals pattern.Values

		r := New()
		r.HandleFunc(http.MethodGet, "/healthz", func(_ http.ResponseWriter, req *http.Request) {
			vals = Params(req)
		})
		Chain(downstream(), r.Routes()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Nil(t, vals)
	})
}

func TestParam(t *testing.T) {
	t.Run("existing parameter", func(t *testing.T) {
		req := SetParams(httptest.NewRequest(http.MethodGet, "/posts/42", nil), pattern.Values{
			"id": pattern.Int(42),
		})

		val, ok := Param(req, "id")
		require.True(t, ok)
		assert.Equal(t, int64(42), val.Int())
	})

	t.Run("missing parameter", func(t *testing.T) {
		req := SetParams(httptest.NewRequest(http.MethodGet, "/posts/42", nil), pattern.Values{
			"id": pattern.Int(42),
		})

		val, ok := Param(req, "name")
		assert.False(t, ok)
		assert.Equal(t, pattern.Value{}, val)
	})

	t.Run("no context", func(t *testing.T) {
		_, ok := Param(httptest.NewRequest(http.MethodGet, "/", nil), "id")
		assert.False(t, ok)
	})
}

func TestSetParams(t *testing.T) {
	t.Run("injects values for handler tests", func(t *testing.T) {
		handler := func(_ http.ResponseWriter, req *http.Request) string {
			return Params(req)["name"].String()
		}

		req := SetParams(httptest.NewRequest(http.MethodGet, "/users/alice", nil), pattern.Values{
			"name": pattern.String("alice"),
		})

		assert.Equal(t, "alice", handler(httptest.NewRecorder(), req))
	})

	t.Run("preserves the matched route", func(t *testing.T) {
		var matched *Route

		r := New()
		r.HandleFunc(http.MethodGet, "/users/{name}", func(_ http.ResponseWriter, req *http.Request) {
			req = SetParams(req, pattern.Values{"name": pattern.String("overridden")})
			matched = CurrentRoute(req)
		})
		Chain(downstream(), r.Routes()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/alice", nil))

		require.NotNil(t, matched)
		assert.Equal(t, "/users/{name}", matched.Template())
	})
}

func TestCurrentRoute(t *testing.T) {
	t.Run("nil without dispatch", func(t *testing.T) {
		assert.Nil(t, CurrentRoute(httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("matched route with method and pattern", func(t *testing.T) {
		var rt *Route

		r := New()
		r.HandleFunc(http.MethodPut, "/users/{name}", func(_ http.ResponseWriter, req *http.Request) {
			rt = CurrentRoute(req)
		})
		Chain(downstream(), r.Routes()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/users/alice", nil))

		require.NotNil(t, rt)
		assert.Equal(t, http.MethodPut, rt.Method())
		assert.Equal(t, "/users/{name}", rt.Template())
		assert.Equal(t, []string{"name"}, rt.Pattern().Keys())
	})
}

func TestStaticContextReuse(t *testing.T) {
	// Routes without captures share one context value across requests.
	var first, second *paramsContext

	r := New()
	r.HandleFunc(http.MethodGet, "/healthz", func(_ http.ResponseWriter, req *http.Request) {
		pc, _ := req.Context().Value(ctxKey).(*paramsContext)
		if first == nil {
			first = pc
		} else {
			second = pc
		}
	})
	h := Chain(downstream(), r.Routes())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.NotNil(t, first)
	assert.Same(t, first, second)
}
