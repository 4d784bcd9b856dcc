package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/group-managers/internal/auth"
	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/moderators"
)

// authorizeGroup проверяет, что текущий пользователь может менять состав группы
func (h *Handler) authorizeGroup(ctx context.Context, groupID int) error {
	ok, err := h.membershipService.CanManageGroup(ctx, auth.UserFromContext(ctx), groupID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

func (h *Handler) writeMember(w http.ResponseWriter, status int, member *domain.Member) {
	cell, _ := moderators.LookupUserTypeCell(h.registry)
	writeJSON(w, status, domainMemberToHTTP(*member, cell))
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if req.GroupID <= 0 || req.UserID <= 0 {
		h.handleError(w, domain.NewBadRequestError("group_id and user_id are required"))
		return
	}

	if err := h.authorizeGroup(r.Context(), req.GroupID); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.membershipService.AddMember(r.Context(), req.GroupID, req.UserID, req.IsGroupManager)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeMember(w, http.StatusCreated, member)
}

func (h *Handler) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req UpdateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}
	if req.IsGroupManager == nil {
		h.handleError(w, domain.NewBadRequestError("is_group_manager is required"))
		return
	}

	existing, err := h.membershipService.GetMembership(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.authorizeGroup(r.Context(), existing.GroupID); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.membershipService.SetUserType(r.Context(), id, *req.IsGroupManager)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeMember(w, http.StatusOK, member)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	existing, err := h.membershipService.GetMembership(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.authorizeGroup(r.Context(), existing.GroupID); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.membershipService.RemoveMember(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
