package repository

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id int) (*domain.Group, error)
	GetByName(ctx context.Context, name string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
}
