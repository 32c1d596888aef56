package auth

import (
	"context"
	"net/http"
	"strings"

	"filmora/models"
)

type contextKey struct{}

var identityKey contextKey

// IdentityFromContext returns the authenticated identity attached to the
// request, or a zero identity when the caller is not logged in.
func IdentityFromContext(ctx context.Context) models.Identity {
	if ident, ok := ctx.Value(identityKey).(models.Identity); ok {
		return ident
	}
	return models.Identity{}
}

// Middleware attaches the identity from a Bearer token to the request
// context when one is present and valid. Requests without a token pass
// through with a zero identity; handlers that require authentication use
// RequireAuth instead.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if ident, err := s.Verify(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), identityKey, ident))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests that carry no valid identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()).IsZero() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
