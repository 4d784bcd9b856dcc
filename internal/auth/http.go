package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bagdasarian/group-managers/internal/domain"
)

// UserLookup загружает пользователя вместе с его правами
type UserLookup interface {
	GetCurrentUser(ctx context.Context, userID int) (*domain.User, error)
}

func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// HTTPMiddleware проверяет Bearer токен и кладет пользователя в контекст
func HTTPMiddleware(verifier TokenVerifier, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				writeUnauthorized(w, errMsg)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				writeUnauthorized(w, "invalid token")
				return
			}

			user, err := users.GetCurrentUser(r.Context(), userID)
			if err != nil {
				writeUnauthorized(w, "user not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(errorBody{
		Error: errorDetail{Code: domain.ErrUnauthorized.Code, Message: message},
	})
}
