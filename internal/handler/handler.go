package handler

import (
	"github.com/bagdasarian/group-managers/internal/plugin"
	"github.com/bagdasarian/group-managers/internal/service"
)

type Handler struct {
	groupService      service.GroupService
	membershipService service.MembershipService
	userService       service.UserService
	statsService      service.StatsService
	registry          *plugin.Registry
	guards            *plugin.NavGuards
}

func NewHandler(
	groupService service.GroupService,
	membershipService service.MembershipService,
	userService service.UserService,
	statsService service.StatsService,
	registry *plugin.Registry,
	guards *plugin.NavGuards,
) *Handler {
	return &Handler{
		groupService:      groupService,
		membershipService: membershipService,
		userService:       userService,
		statsService:      statsService,
		registry:          registry,
		guards:            guards,
	}
}
