package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// headerTracker records whether a status line has already gone out
type headerTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (t *headerTracker) WriteHeader(code int) {
	t.wroteHeader = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *headerTracker) Write(b []byte) (int, error) {
	t.wroteHeader = true
	return t.ResponseWriter.Write(b)
}

// Recover turns a handler panic into a 500. When the handler already
// started its response the status cannot change, so only the log is written.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &headerTracker{ResponseWriter: w}

			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Bool("response_started", tw.wroteHeader),
						zap.Stack("stack"),
					)

					if tw.wroteHeader {
						return
					}

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"status":false,"message":"Internal server error"}`))
				}
			}()
			next.ServeHTTP(tw, r)
		})
	}
}
