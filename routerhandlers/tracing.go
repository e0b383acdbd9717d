package routerhandlers

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-strada/strada/router"
)

// tracerName is the instrumentation scope reported on spans.
const tracerName = "github.com/go-strada/strada/routerhandlers"

// TracingConfig configures the Tracing middleware behaviour.
type TracingConfig struct {
	// TracerProvider supplies the tracer.
	// Defaults to otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// Propagator extracts incoming trace context from request headers.
	// Defaults to otel.GetTextMapPropagator().
	Propagator propagation.TextMapPropagator
}

// Tracing returns a middleware that starts an OpenTelemetry server span per
// request. Spans are named "METHOD template" when the router matched a
// route, and just "METHOD" otherwise, keeping raw paths out of span names.
// Remote trace context is extracted from the request headers, and the
// response status is recorded when the span ends: 5xx and 4xx responses set
// the span status to Error.
func Tracing(cfg TracingConfig) router.Middleware {
	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	propagator := cfg.Propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}

	tracer := provider.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			name := r.Method
			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
				attribute.String("http.host", r.Host),
				attribute.String("http.user_agent", r.UserAgent()),
			}

			if rt := router.CurrentRoute(r); rt != nil {
				name = r.Method + " " + rt.Template()
				attrs = append(attrs, attribute.String("http.route", rt.Template()))
			}

			ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindServer))
			span.SetAttributes(attrs...)
			defer span.End()

			rw := newResponseRecorder(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			status := rw.Status()
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusBadRequest {
				span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}
