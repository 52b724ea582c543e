package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/pkg/ctxutil"
)

// accessInfo is filled in by inner middleware so the access log can report
// identifiers resolved after the Logger wrapped the request.
type accessInfo struct {
	userID    uuid.UUID
	sessionID uuid.UUID
}

type accessInfoKey struct{}

func withAccessInfo(ctx context.Context) (context.Context, *accessInfo) {
	info := &accessInfo{}
	return context.WithValue(ctx, accessInfoKey{}, info), info
}

func recordUserID(ctx context.Context, userID uuid.UUID) {
	if info, ok := ctx.Value(accessInfoKey{}).(*accessInfo); ok {
		info.userID = userID
	}
}

// RecordSessionID attaches the practice session a handler resolved to the
// access log line of the request.
func RecordSessionID(ctx context.Context, sessionID uuid.UUID) {
	if info, ok := ctx.Value(accessInfoKey{}).(*accessInfo); ok {
		info.sessionID = sessionID
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_id, session_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			ctx, info := withAccessInfo(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			userID := info.userID
			if userID == uuid.Nil {
				userID, _ = ctxutil.UserIDFromCtx(r.Context())
			}
			if userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			if info.sessionID != uuid.Nil {
				attrs = append(attrs, slog.String("session_id", info.sessionID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}
