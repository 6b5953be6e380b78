package middleware

import (
	"net/http"
	"strings"

	"bridal-film/backend/internal/authctx"
	"bridal-film/backend/internal/httpjson"
	"bridal-film/backend/internal/token"
)

// WithAuth verifies the bearer token and attaches the decoded claims to the
// request context. A missing header is 401, a bad token is 403; authorization
// decisions stay with the handlers.
func WithAuth(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				httpjson.Error(w, http.StatusUnauthorized, "unauthenticated user, please login")
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httpjson.Error(w, http.StatusForbidden, "unauthorized access")
				return
			}

			claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				httpjson.Error(w, http.StatusForbidden, "unauthorized access")
				return
			}

			ctx := authctx.WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
