package service

import (
	"context"
	"strconv"

	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/moderators"
	"github.com/bagdasarian/group-managers/internal/plugin"
	"github.com/bagdasarian/group-managers/internal/repository"
)

type membershipService struct {
	membershipRepo repository.MembershipRepository
	groupRepo      repository.GroupRepository
	userRepo       repository.UserRepository
	registry       *plugin.Registry
}

func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	registry *plugin.Registry,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		groupRepo:      groupRepo,
		userRepo:       userRepo,
		registry:       registry,
	}
}

func membershipNotFound(membershipID int) *domain.DomainError {
	return domain.NewNotFoundError("membership with id " + strconv.Itoa(membershipID))
}

func (s *membershipService) groupManagersEnabled() bool {
	_, ok := moderators.LookupUserTypeCell(s.registry)
	return ok
}

func (s *membershipService) AddMember(ctx context.Context, groupID int, userID int, isGroupManager *bool) (*domain.Member, error) {
	if isGroupManager != nil && *isGroupManager && !s.groupManagersEnabled() {
		return nil, domain.ErrFeatureDisabled
	}

	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if err.Error() == "group not found" {
			return nil, domain.NewNotFoundError("group with id " + strconv.Itoa(groupID))
		}
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if err.Error() == "user not found" {
			return nil, domain.NewNotFoundError("user with id " + strconv.Itoa(userID))
		}
		return nil, err
	}

	existing, err := s.membershipRepo.GetByGroupAndUser(ctx, groupID, userID)
	if err == nil && existing != nil {
		return nil, domain.ErrMembershipExists
	}
	if err != nil && err.Error() != "membership not found" {
		return nil, err
	}

	member := &domain.Member{
		GroupID:        groupID,
		UserID:         userID,
		IsGroupManager: isGroupManager,
	}
	if err := s.membershipRepo.Create(ctx, member); err != nil {
		if err.Error() == "membership already exists" {
			return nil, domain.ErrMembershipExists
		}
		return nil, err
	}

	return s.GetMembership(ctx, member.MembershipID)
}

func (s *membershipService) GetMembership(ctx context.Context, membershipID int) (*domain.Member, error) {
	member, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		if err.Error() == "membership not found" {
			return nil, membershipNotFound(membershipID)
		}
		return nil, err
	}

	return member, nil
}

func (s *membershipService) RemoveMember(ctx context.Context, membershipID int) error {
	err := s.membershipRepo.Delete(ctx, membershipID)
	if err != nil {
		if err.Error() == "membership not found" {
			return membershipNotFound(membershipID)
		}
		return err
	}

	return nil
}

// UpdateMembership принимает замену записи целиком. Группа и пользователь
// у существующего членства не меняются.
func (s *membershipService) UpdateMembership(ctx context.Context, member domain.Member) (*domain.Member, error) {
	existing, err := s.GetMembership(ctx, member.MembershipID)
	if err != nil {
		return nil, err
	}

	if (member.GroupID != 0 && member.GroupID != existing.GroupID) ||
		(member.UserID != 0 && member.UserID != existing.UserID) {
		return nil, domain.NewBadRequestError("membership group and user cannot be changed")
	}

	if member.IsManager() && !existing.IsManager() && !s.groupManagersEnabled() {
		return nil, domain.ErrFeatureDisabled
	}

	if err := s.membershipRepo.Update(ctx, &member); err != nil {
		if err.Error() == "membership not found" {
			return nil, membershipNotFound(member.MembershipID)
		}
		return nil, err
	}

	return s.GetMembership(ctx, member.MembershipID)
}

func (s *membershipService) SetUserType(ctx context.Context, membershipID int, isGroupManager bool) (*domain.Member, error) {
	cell, ok := moderators.LookupUserTypeCell(s.registry)
	if !ok {
		return nil, domain.ErrFeatureDisabled
	}

	member, err := s.GetMembership(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Member
	cell(*member, func(m domain.Member) {
		updated = &m
	}).Toggle.Change(isGroupManager)
	if updated == nil {
		return member, nil
	}

	return s.UpdateMembership(ctx, *updated)
}

func (s *membershipService) CanManageGroup(ctx context.Context, user *domain.User, groupID int) (bool, error) {
	if user == nil {
		return false, nil
	}
	if user.IsSuperuser {
		return true, nil
	}
	if !s.groupManagersEnabled() {
		return false, nil
	}

	return s.membershipRepo.IsManagerOf(ctx, user.ID, groupID)
}
