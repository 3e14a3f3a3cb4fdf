package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"medvirkning/pkg/requestcontext"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	NAVIdent string
}

// JWTValidatorFunc adapts a function to JWTValidator.
type JWTValidatorFunc func(tokenString string) (*JWTClaims, error)

func (f JWTValidatorFunc) ValidateToken(tokenString string) (*JWTClaims, error) {
	return f(tokenString)
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAuth rejects requests without a valid caseworker bearer token and
// stores the NAVident and raw token on the request context.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"call_id", requestcontext.CallID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"call_id", requestcontext.CallID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx = requestcontext.WithNAVIdent(ctx, claims.NAVIdent)
			ctx = requestcontext.WithBearerToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
