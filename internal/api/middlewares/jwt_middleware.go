package middlewares

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"financify/internal/repositories/sqlconnect"
	"financify/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware validates the bearer token and resolves its subject back to a
// user row on every request, so tokens for deleted users stop working.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteError(w, "Unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			utils.WriteError(w, "Unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		username, err := utils.VerifyToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.WriteError(w, "token expired", http.StatusUnauthorized)
				return
			}
			utils.WriteError(w, "invalid login token", http.StatusUnauthorized)
			return
		}

		db := sqlconnect.DB
		if db == nil {
			utils.Logger.Error("DB is not initialized")
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		var userID int
		var email string
		err = db.QueryRow("SELECT id, email FROM users WHERE username = ?", username).Scan(&userID, &email)
		if err != nil {
			if err == sql.ErrNoRows {
				utils.WriteError(w, "invalid login token", http.StatusUnauthorized)
				return
			}
			utils.Logger.Errorf("failed to resolve token subject: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ContextKey("userId"), userID)
		ctx = context.WithValue(ctx, utils.ContextKey("username"), username)
		ctx = context.WithValue(ctx, utils.ContextKey("email"), email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
