package service

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type UserService interface {
	// GetCurrentUser получает пользователя вместе с его правами
	GetCurrentUser(ctx context.Context, userID int) (*domain.User, error)
}
