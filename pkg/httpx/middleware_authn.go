package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/campuskit/accounts/pkg/slogx"
)

// Authenticator resolves an opaque bearer token to the owning user's id.
// Implementations must fail for revoked tokens and deactivated accounts.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (userID string, err error)
}

// AuthnMiddleware enforces the `Authorization: Token <value>` scheme and
// injects the resolved user id plus the raw token into the request context.
func AuthnMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := tokenFromHeader(r.Header.Get("Authorization"))
			if !ok {
				writeTokenError(w, "Authentication credentials were not provided.")
				return
			}

			userID, err := a.Authenticate(ctx, raw)
			if err != nil {
				log.Warn("token authentication failed", "err", err)
				writeTokenError(w, "Invalid token.")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeyToken, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromHeader(authz string) (string, bool) {
	scheme, value, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Token") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func writeTokenError(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Token`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{"detail": detail})
}
