package service

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type MembershipService interface {
	// AddMember добавляет пользователя в группу
	AddMember(ctx context.Context, groupID int, userID int, isGroupManager *bool) (*domain.Member, error)

	// GetMembership получает запись о членстве
	GetMembership(ctx context.Context, membershipID int) (*domain.Member, error)

	// RemoveMember удаляет пользователя из группы
	RemoveMember(ctx context.Context, membershipID int) error

	// UpdateMembership сохраняет запись о членстве целиком
	UpdateMembership(ctx context.Context, member domain.Member) (*domain.Member, error)

	// SetUserType меняет роль участника через ячейку UserTypeCell
	SetUserType(ctx context.Context, membershipID int, isGroupManager bool) (*domain.Member, error)

	// CanManageGroup сообщает, может ли пользователь менять состав группы
	CanManageGroup(ctx context.Context, user *domain.User, groupID int) (bool, error)
}
