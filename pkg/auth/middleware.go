package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/shedledger/pkg/utils"
)

type ContextKey string

const OperatorIDKey ContextKey = "operatorID"

// Middleware rejects requests without a valid bearer token and stores the
// operator id in the request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := WithOperatorID(r.Context(), claims.OperatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithOperatorID(ctx context.Context, operatorID int64) context.Context {
	return context.WithValue(ctx, OperatorIDKey, operatorID)
}

// OperatorID returns 0 when the context carries no operator.
func OperatorID(ctx context.Context) int64 {
	id, _ := ctx.Value(OperatorIDKey).(int64)
	return id
}
