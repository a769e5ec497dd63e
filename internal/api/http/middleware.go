package http

import (
	"context"
	"net/http"
	"strings"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware validates the bearer token and injects the claims into the
// request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, security.ErrWrongTokenType)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards administrator-only endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r)
		if claims == nil || claims.Role != string(domain.UserRoleAdministrator) {
			respondJSON(w, http.StatusForbidden, errorResponse{Error: "administrator role required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(claimsKey).(*security.UserClaims)
	return claims
}

func isAdmin(r *http.Request) bool {
	claims := claimsFrom(r)
	return claims != nil && claims.Role == string(domain.UserRoleAdministrator)
}
