package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tripreverie/backend/internal/domain"
)

// Identity headers set by the upstream auth layer. This service consumes the
// current-user identity; it neither issues nor validates credentials.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

// identityKey is the context key for the request identity.
// An unexported struct type avoids collisions with other packages' keys.
type identityKey struct{}

// NewIdentityHandler returns a middleware that reads the identity headers
// into a domain.Identity on the request context. Requests without an
// X-User-Id are rejected with 401 — every pipeline operation needs an owner
// to stamp or check.
func NewIdentityHandler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if userID == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				//nolint:errcheck — nothing useful to do with a failed error write.
				w.Write([]byte(`{"error":{"code":"unauthorized","message":"missing identity"}}`))
				return
			}

			who := domain.Identity{
				UserID: userID,
				Email:  strings.TrimSpace(r.Header.Get(HeaderUserEmail)),
				Role:   domain.RoleUser,
			}
			if strings.EqualFold(r.Header.Get(HeaderUserRole), string(domain.RoleAdmin)) {
				who.Role = domain.RoleAdmin
			}

			ctx := context.WithValue(r.Context(), identityKey{}, who)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity placed on ctx by
// NewIdentityHandler, and whether one was present.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	who, ok := ctx.Value(identityKey{}).(domain.Identity)
	return who, ok
}
