package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/flashlearn/internal/ctxlog"
)

// RequestLogger logs one line per request and stores a request-scoped logger
// in the context. It expects middleware.RequestID to run first.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()

			reqLogger := logger
			if id := middleware.GetReqID(req.Context()); id != "" {
				reqLogger = logger.With("request_id", id)
			}
			req = req.WithContext(ctxlog.WithLogger(req.Context(), reqLogger))

			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			reqLogger.Log(req.Context(), level, "http.request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
