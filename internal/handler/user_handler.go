package handler

import (
	"net/http"

	"github.com/bagdasarian/group-managers/internal/auth"
	"github.com/bagdasarian/group-managers/internal/domain"
)

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}
