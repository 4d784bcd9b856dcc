package repository

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
}
