package service

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type GroupService interface {
	CreateGroup(ctx context.Context, name string) (*domain.Group, error)
	GetGroup(ctx context.Context, id int) (*domain.Group, error)
	ListGroups(ctx context.Context) ([]*domain.Group, error)
}
