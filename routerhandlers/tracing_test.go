package routerhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/go-strada/strada/router"
)

// newSpanRecorder returns a span recorder and a tracer provider feeding it.
func newSpanRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return sr, tp
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestTracing(t *testing.T) {
	t.Run("names span after the matched route", func(t *testing.T) {
		sr, tp := newSpanRecorder()

		r := router.New()
		r.Get("/users/{name}", statusHandler(http.StatusOK))
		r.Use(Tracing(TracingConfig{TracerProvider: tp}))

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/john", nil))

		spans := sr.Ended()
		require.Len(t, spans, 1)

		span := spans[0]
		assert.Equal(t, "GET /users/{name}", span.Name())
		assert.Equal(t, oteltrace.SpanKindServer, span.SpanKind())
		assert.Equal(t, codes.Ok, span.Status().Code)

		method, ok := spanAttr(span, "http.method")
		require.True(t, ok)
		assert.Equal(t, "GET", method.AsString())

		route, ok := spanAttr(span, "http.route")
		require.True(t, ok)
		assert.Equal(t, "/users/{name}", route.AsString())

		status, ok := spanAttr(span, "http.status_code")
		require.True(t, ok)
		assert.Equal(t, int64(http.StatusOK), status.AsInt64())
	})

	t.Run("bare method name outside dispatch", func(t *testing.T) {
		sr, tp := newSpanRecorder()

		r := router.New()
		r.Get("/users", statusHandler(http.StatusOK))

		h := router.Chain(r, Tracing(TracingConfig{TracerProvider: tp}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		spans := sr.Ended()
		require.Len(t, spans, 1)

		span := spans[0]
		assert.Equal(t, "GET", span.Name())

		_, ok := spanAttr(span, "http.route")
		assert.False(t, ok)

		target, ok := spanAttr(span, "http.target")
		require.True(t, ok)
		assert.Equal(t, "/missing", target.AsString())

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "HTTP 404", span.Status().Description)
	})

	t.Run("error status on handler failure", func(t *testing.T) {
		sr, tp := newSpanRecorder()

		r := router.New()
		r.Get("/broken", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		r.Use(Tracing(TracingConfig{TracerProvider: tp}))

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

		spans := sr.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "HTTP 500", spans[0].Status().Description)
	})

	t.Run("extracts remote parent from traceparent", func(t *testing.T) {
		sr, tp := newSpanRecorder()

		r := router.New()
		r.Get("/ping", statusHandler(http.StatusOK))
		r.Use(Tracing(TracingConfig{
			TracerProvider: tp,
			Propagator:     propagation.TraceContext{},
		}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
		r.ServeHTTP(httptest.NewRecorder(), req)

		spans := sr.Ended()
		require.Len(t, spans, 1)

		span := spans[0]
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", span.SpanContext().TraceID().String())
		assert.Equal(t, "00f067aa0ba902b7", span.Parent().SpanID().String())
		assert.True(t, span.Parent().IsRemote())
	})

	t.Run("handler sees the span context", func(t *testing.T) {
		_, tp := newSpanRecorder()

		var handlerSpanValid bool

		r := router.New()
		r.Get("/ping", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			handlerSpanValid = oteltrace.SpanFromContext(req.Context()).SpanContext().IsValid()
			w.WriteHeader(http.StatusOK)
		}))
		r.Use(Tracing(TracingConfig{TracerProvider: tp}))

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.True(t, handlerSpanValid)
	})
}

func BenchmarkTracing(b *testing.B) {
	tp := sdktrace.NewTracerProvider()

	r := router.New()
	r.Get("/test", statusHandler(http.StatusOK))
	r.Use(Tracing(TracingConfig{TracerProvider: tp}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
}
