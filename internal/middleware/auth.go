// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/recipebox/recipebox/internal/core"
)

const (
	IdentityKey contextKey = "identity"
)

// Identity is the resolved owner of a request. Handlers and services receive
// it explicitly; nothing below the middleware reads ambient request state.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	Staff     bool
	Superuser bool
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			identity, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				// Unknown, malformed and revoked tokens are deliberately
				// indistinguishable to the client.
				core.JSONError(w, core.TokenInvalidError())
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentity(r.Context())

		if identity == nil {
			core.JSONError(
				w,
				core.UnauthorizedError("authentication required"),
			)
			return
		}

		if !identity.Staff {
			core.JSONError(
				w,
				core.ForbiddenError("staff access required"),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ExtractToken accepts both "Token <key>" and "Bearer <key>" authorization
// schemes.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}

	if !strings.EqualFold(parts[0], "token") &&
		!strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetIdentity(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(IdentityKey).(*Identity); ok {
		return identity
	}
	return nil
}

func GetUserID(ctx context.Context) string {
	if identity := GetIdentity(ctx); identity != nil {
		return identity.UserID
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != ""
}
