package repository

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type MembershipRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, membershipID int) (*domain.Member, error)
	GetByGroupAndUser(ctx context.Context, groupID int, userID int) (*domain.Member, error)
	ListByGroupID(ctx context.Context, groupID int) ([]domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, membershipID int) error
	IsManagerOf(ctx context.Context, userID int, groupID int) (bool, error)
}
