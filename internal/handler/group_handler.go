package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/group-managers/internal/auth"
	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/moderators"
)

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, domain.NewBadRequestError("id must be a positive integer")
	}
	return id, nil
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.ListGroups(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainGroupsToHTTP(groups))
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.GetGroup(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	cell, _ := moderators.LookupUserTypeCell(h.registry)
	writeJSON(w, http.StatusOK, domainGroupToHTTP(group, cell))
}

// CreateGroup доступен только суперпользователям
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil || !user.IsSuperuser {
		h.handleError(w, domain.ErrForbidden)
		return
	}

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainGroupToHTTP(group, nil))
}
