package server

import (
	"net/http"

	"github.com/bagdasarian/group-managers/internal/handler"
	"github.com/bagdasarian/group-managers/internal/plugin"
)

type Middleware func(http.Handler) http.Handler

func SetupRoutes(mux *http.ServeMux, h *handler.Handler, authenticate Middleware) {
	authed := func(fn http.HandlerFunc) http.Handler {
		return authenticate(fn)
	}
	people := func(fn http.HandlerFunc) http.Handler {
		return authenticate(h.RequireNavAccess(plugin.RoutePeople)(fn))
	}

	mux.Handle("GET /api/user/current", authed(h.GetCurrentUser))
	mux.Handle("GET /api/permissions/group", people(h.ListGroups))
	mux.Handle("POST /api/permissions/group", people(h.CreateGroup))
	mux.Handle("GET /api/permissions/group/{id}", people(h.GetGroup))
	mux.Handle("POST /api/permissions/membership", people(h.AddMember))
	mux.Handle("PUT /api/permissions/membership/{id}", people(h.UpdateMembership))
	mux.Handle("DELETE /api/permissions/membership/{id}", people(h.RemoveMember))
	mux.Handle("GET /api/stats", people(h.GetStats))
}
