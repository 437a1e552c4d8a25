package keepnote

import (
	"context"
	"net/http"
	"time"

	"github.com/keepnote/keepnote/pkg/models"
)

type contextKey int

const subjectKey contextKey = iota

// SubjectFromContext returns the authenticated user ID placed in the
// context by the auth gate.
func SubjectFromContext(ctx context.Context) (models.UserID, bool) {
	id, ok := ctx.Value(subjectKey).(models.UserID)
	return id, ok
}

// tokenFromHeader extracts the token from the Authorization header.
// Both a raw token and a "Bearer "-prefixed one are accepted.
func tokenFromHeader(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	const bearerPrefix = "Bearer "
	if len(authz) > len(bearerPrefix) && authz[:len(bearerPrefix)] == bearerPrefix {
		return authz[len(bearerPrefix):]
	}
	return authz
}

// authenticate is the auth gate for the protected route group. It
// verifies the request token and injects the subject into the request
// context. On failure the request is rejected before any handler, and
// therefore any store operation, runs.
func (a *App) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.tokens.Verify(tokenFromHeader(r))
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Login required, cannot access the restricted routes")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey, userID)))
	})
}

// logRequests logs one line per request with method, path, status and
// duration.
func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		a.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
