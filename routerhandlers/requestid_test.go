package routerhandlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-strada/strada/router"
)

var (
	uuidV4Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	uuidV7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name           string
		config         RequestIDConfig
		incomingHeader string
		wantHeader     string
		wantGenerated  bool
	}{
		{
			name:          "generates UUID v4 by default",
			config:        RequestIDConfig{},
			wantGenerated: true,
		},
		{
			name:           "does not trust incoming by default",
			config:         RequestIDConfig{},
			incomingHeader: "existing-id",
			wantGenerated:  true,
		},
		{
			name:           "trusts incoming when configured",
			config:         RequestIDConfig{TrustIncoming: true},
			incomingHeader: "existing-id",
			wantHeader:     "existing-id",
		},
		{
			name:          "generates when trust incoming but no header",
			config:        RequestIDConfig{TrustIncoming: true},
			wantGenerated: true,
		},
		{
			name:       "custom generate func",
			config:     RequestIDConfig{GenerateFunc: func(_ *http.Request) string { return "custom-id" }},
			wantHeader: "custom-id",
		},
		{
			name:       "custom header name",
			config:     RequestIDConfig{HeaderName: "X-Trace-ID", GenerateFunc: func(_ *http.Request) string { return "trace-123" }},
			wantHeader: "trace-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedRequestHeader string
			var capturedContextID string

			headerName := tt.config.HeaderName
			if headerName == "" {
				headerName = "X-Request-ID"
			}

			r := router.New()
			r.Get("/test", http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) {
				capturedRequestHeader = req.Header.Get(headerName)
				capturedContextID = RequestIDFromContext(req.Context())
			}))
			r.Use(RequestID(tt.config))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incomingHeader != "" {
				req.Header.Set(headerName, tt.incomingHeader)
			}
			r.ServeHTTP(w, req)

			responseHeader := w.Header().Get(headerName)

			if tt.wantGenerated {
				assert.Regexp(t, uuidV4Regex, responseHeader)
			} else {
				assert.Equal(t, tt.wantHeader, responseHeader)
			}

			assert.Equal(t, responseHeader, capturedRequestHeader)
			assert.Equal(t, responseHeader, capturedContextID)

			if tt.incomingHeader != "" && !tt.config.TrustIncoming {
				assert.NotEqual(t, tt.incomingHeader, responseHeader)
			}
		})
	}

	t.Run("empty generated ID leaves request untouched", func(t *testing.T) {
		var contextID string

		r := router.New()
		r.Get("/test", http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) {
			contextID = RequestIDFromContext(req.Context())
		}))
		r.Use(RequestID(RequestIDConfig{
			GenerateFunc: func(_ *http.Request) string { return "" },
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Empty(t, w.Header().Get("X-Request-ID"))
		assert.Empty(t, contextID)
	})
}

func TestRequestIDFromContext(t *testing.T) {
	t.Run("returns empty string without middleware", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(context.Background()))
	})
}

func TestGenerateUUIDv7(t *testing.T) {
	first := GenerateUUIDv7(nil)
	assert.Regexp(t, uuidV7Regex, first)

	// v7 IDs embed a millisecond timestamp, so later IDs sort after
	// earlier ones.
	time.Sleep(2 * time.Millisecond)
	second := GenerateUUIDv7(nil)
	assert.Regexp(t, uuidV7Regex, second)
	assert.Greater(t, second, first)
}

func BenchmarkRequestID(b *testing.B) {
	r := router.New()
	r.Get("/test", statusHandler(http.StatusOK))
	r.Use(RequestID(RequestIDConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
}
