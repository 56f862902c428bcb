package api

import (
	"bufio"
	"context"
	"delivery-sim/internal/platform/obs"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Hijack lets the WebSocket upgrade take over the connection.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack: underlying writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// RequestRecorder receives one call per served request.
type RequestRecorder interface {
	RecordHTTPRequest(method, route string, status int, seconds float64)
}

// loggingMiddleware tags each request with an id and logs duration and
// response size.
func loggingMiddleware(next http.Handler, rec RequestRecorder) http.Handler {
	log := logrus.WithField("module", "api")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)

		req := r.WithContext(context.WithValue(r.Context(), obs.RequestIDKey, reqID))
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, req)

		duration := time.Since(start)

		log.WithFields(logrus.Fields{
			"req_id": reqID,
			"method": r.Method,
			"path":   r.URL.RequestURI(),
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur_ms": duration.Milliseconds(),
		}).Info("request")

		if rec != nil {
			route := req.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.RecordHTTPRequest(r.Method, route, sw.status, duration.Seconds())
		}
	})
}

// rateLimited rejects requests beyond the limiter's budget with 429.
func rateLimited(limiter *rate.Limiter, next http.HandlerFunc) http.HandlerFunc {
	if limiter == nil {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many commands"}` + "\n"))
			return
		}
		next(w, r)
	}
}
