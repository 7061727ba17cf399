package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose verified token is missing or is not an
// access token. It must run after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if sub, _ := claims["sub"].(string); sub == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
