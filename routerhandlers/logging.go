package routerhandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fatih/color"

	"github.com/go-strada/strada/router"
)

// LoggingConfig configures the Logging middleware behaviour.
type LoggingConfig struct {
	// Logger receives the access log records. Defaults to slog.Default().
	Logger *slog.Logger

	// Level is the level access logs are emitted at.
	// Defaults to slog.LevelInfo.
	Level slog.Level

	// Colorize renders the status code attribute as a colored string for
	// development consoles: green for 2xx, cyan for 3xx, yellow for 4xx,
	// red for 5xx. Color output degrades to plain text when the
	// destination is not a terminal.
	Colorize bool
}

// Logging returns a middleware that writes one structured access log record
// per request: method, path, matched route template (when dispatched through
// the router), status, response size, duration, remote address and the
// request ID when the RequestID middleware ran earlier in the chain.
func Logging(cfg LoggingConfig) router.Middleware {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	level := cfg.Level
	colorize := cfg.Colorize

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseRecorder(w)

			next.ServeHTTP(rw, r)

			status := rw.Status()

			attrs := make([]slog.Attr, 0, 8)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if rt := router.CurrentRoute(r); rt != nil {
				attrs = append(attrs, slog.String("route", rt.Template()))
			}

			if colorize {
				attrs = append(attrs, slog.String("status", statusColorizer(status)("%d", status)))
			} else {
				attrs = append(attrs, slog.Int("status", status))
			}

			attrs = append(attrs,
				slog.Int("bytes", rw.Size()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote", r.RemoteAddr),
			)

			if id := RequestIDFromContext(r.Context()); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			logger.LogAttrs(r.Context(), level, "request", attrs...)
		})
	}
}

// statusColorizer picks a color formatter for the status class.
func statusColorizer(code int) func(format string, a ...any) string {
	switch {
	case code >= http.StatusInternalServerError:
		return color.RedString
	case code >= http.StatusBadRequest:
		return color.YellowString
	case code >= http.StatusMultipleChoices:
		return color.CyanString
	default:
		return color.GreenString
	}
}
