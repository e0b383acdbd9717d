package routerhandlers

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
)

// responseRecorder wraps http.ResponseWriter to capture the status code and
// the number of body bytes written, for middleware that reports on responses.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	size    int
	written bool
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w}
}

// WriteHeader captures the status code. Later calls are ignored, matching
// the underlying writer's behaviour.
func (rw *responseRecorder) WriteHeader(code int) {
	if !rw.written {
		rw.status = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseRecorder) Write(b []byte) (int, error) {
	if !rw.written {
		rw.status = http.StatusOK
		rw.written = true
	}

	n, err := rw.ResponseWriter.Write(b)
	rw.size += n

	return n, err
}

// Status returns the response status code, defaulting to 200 when the
// handler never wrote one explicitly.
func (rw *responseRecorder) Status() int {
	if rw.status == 0 {
		return http.StatusOK
	}

	return rw.status
}

// Size returns the number of body bytes written so far.
func (rw *responseRecorder) Size() int {
	return rw.size
}

// Flush implements http.Flusher.
func (rw *responseRecorder) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack implements http.Hijacker so wrapped connections can still be
// taken over for upgrades.
func (rw *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return h.Hijack()
	}

	return nil, nil, fmt.Errorf("underlying ResponseWriter doesn't support Hijack")
}

// Push implements http.Pusher for HTTP/2 server push.
func (rw *responseRecorder) Push(target string, opts *http.PushOptions) error {
	if p, ok := rw.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}

	return http.ErrNotSupported
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (rw *responseRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
