// Package middleware provides the HTTP middleware chain shared by all
// handlers. Request-scoped values are stored through pkg/requestcontext so
// services never import net/http.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"provenia/pkg/requestcontext"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns a correlation ID to every request, honoring one supplied
// by the caller, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithClientIP(ctx, r.RemoteAddr)
		ctx = requestcontext.WithUserAgent(ctx, r.UserAgent())
		ctx = requestcontext.WithDevice(ctx, deviceSummary(r.UserAgent()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// deviceSummary condenses a raw user agent into a short device description
// for request logs. Unparseable agents report as "unknown".
func deviceSummary(raw string) string {
	if raw == "" {
		return "unknown"
	}
	ua := useragent.New(raw)
	if ua.Bot() {
		name, _ := ua.Browser()
		if name == "" {
			return "bot"
		}
		return "bot:" + name
	}
	name, version := ua.Browser()
	if name == "" {
		return "unknown"
	}
	summary := name
	if version != "" {
		summary = fmt.Sprintf("%s %s", name, version)
	}
	if os := ua.OS(); os != "" {
		summary = fmt.Sprintf("%s on %s", summary, os)
	}
	if ua.Mobile() {
		summary += " (mobile)"
	}
	return summary
}

// Recovery converts panics into 500 responses instead of dropped connections.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("path", r.URL.Path),
						slog.String("request_id", requestcontext.RequestID(r.Context())))
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Logger records one line per request with method, path, status, and latency.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			logger.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", requestcontext.RequestID(r.Context())),
				slog.String("device", requestcontext.Device(r.Context())))
		})
	}
}

// Timeout bounds request handling; handlers see ctx.Done when it fires.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

// ContentTypeJSON rejects writes with a non-JSON body up front.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			if ct := r.Header.Get("Content-Type"); ct != "" && ct != "application/json" && ct != "application/json; charset=utf-8" {
				http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
