package handler

import (
	"net/http"

	"github.com/bagdasarian/group-managers/internal/auth"
	"github.com/bagdasarian/group-managers/internal/domain"
)

// RequireNavAccess пропускает суперпользователей, остальных проверяет
// по таблице NavGuards для раздела route
func (h *Handler) RequireNavAccess(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := auth.UserFromContext(r.Context())
			if user == nil {
				writeError(w, domain.ErrUnauthorized)
				return
			}

			if !user.IsSuperuser && (h.guards == nil || !h.guards.Allow(route, user)) {
				writeError(w, domain.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
