package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/repository"
)

type groupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService создает новый экземпляр GroupService
func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

// CreateGroup создает пустую группу с уникальным именем
func (s *groupService) CreateGroup(ctx context.Context, name string) (*domain.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("group name is required")
	}

	existingGroup, err := s.groupRepo.GetByName(ctx, name)
	if err == nil && existingGroup != nil {
		return nil, domain.ErrGroupExists
	}
	if err != nil && err.Error() != "group not found" {
		return nil, err
	}

	group := &domain.Group{Name: name}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		if err.Error() == "group already exists" {
			return nil, domain.ErrGroupExists
		}
		return nil, err
	}

	return group, nil
}

// GetGroup получает группу с участниками по ID
func (s *groupService) GetGroup(ctx context.Context, id int) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "group not found" {
			return nil, domain.NewNotFoundError("group with id " + strconv.Itoa(id))
		}
		return nil, err
	}

	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context) ([]*domain.Group, error) {
	return s.groupRepo.List(ctx)
}
