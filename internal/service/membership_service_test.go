package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/moderators"
	"github.com/bagdasarian/group-managers/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type enabledFeatures struct{}

func (enabledFeatures) HasPremiumFeature(string) bool { return true }

// newRegistry возвращает реестр с установленным расширением или пустой
func newRegistry(t *testing.T, enabled bool) *plugin.Registry {
	t.Helper()
	registry := plugin.NewRegistry(plugin.DuplicateError)
	if enabled {
		_, err := moderators.InitializeExtensions(moderators.Config{
			Features: enabledFeatures{},
			Registry: registry,
			Guards:   plugin.NewNavGuards(plugin.DefaultNavGuards()),
		})
		require.NoError(t, err)
	}
	return registry
}

type membershipMocks struct {
	membershipRepo *MockMembershipRepository
	groupRepo      *MockGroupRepository
	userRepo       *MockUserRepository
}

func setupMembershipService(t *testing.T, enabled bool) (MembershipService, membershipMocks) {
	m := membershipMocks{
		membershipRepo: new(MockMembershipRepository),
		groupRepo:      new(MockGroupRepository),
		userRepo:       new(MockUserRepository),
	}
	service := NewMembershipService(m.membershipRepo, m.groupRepo, m.userRepo, newRegistry(t, enabled))
	return service, m
}

func boolPtr(v bool) *bool {
	return &v
}

func alice(isManager *bool) *domain.Member {
	return &domain.Member{
		MembershipID:   10,
		GroupID:        1,
		UserID:         100,
		Email:          "alice@example.com",
		FirstName:      "Alice",
		LastName:       "Smith",
		IsGroupManager: isManager,
	}
}

func TestMembershipService_SetUserType(t *testing.T) {
	t.Run("назначение менеджером", func(t *testing.T) {
		service, m := setupMembershipService(t, true)
		ctx := context.Background()

		original := alice(boolPtr(false))
		promoted := alice(boolPtr(true))

		m.membershipRepo.On("GetByID", mock.Anything, 10).Return(original, nil).Twice()
		m.membershipRepo.On("Update", mock.Anything, mock.MatchedBy(func(member *domain.Member) bool {
			return member.MembershipID == 10 &&
				member.UserID == 100 &&
				member.Email == "alice@example.com" &&
				member.IsManager()
		})).Return(nil).Once()
		m.membershipRepo.On("GetByID", mock.Anything, 10).Return(promoted, nil).Once()

		result, err := service.SetUserType(ctx, 10, true)

		require.NoError(t, err)
		assert.True(t, result.IsManager())
		assert.False(t, *original.IsGroupManager, "исходная запись не должна меняться")
		m.membershipRepo.AssertExpectations(t)
	})

	t.Run("ошибка: расширение не установлено", func(t *testing.T) {
		service, m := setupMembershipService(t, false)

		result, err := service.SetUserType(context.Background(), 10, true)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrFeatureDisabled))
		m.membershipRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: членство не найдено", func(t *testing.T) {
		service, m := setupMembershipService(t, true)

		m.membershipRepo.On("GetByID", mock.Anything, 99).Return(nil, errors.New("membership not found")).Once()

		result, err := service.SetUserType(context.Background(), 99, true)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		m.membershipRepo.AssertExpectations(t)
	})
}

func TestMembershipService_UpdateMembership(t *testing.T) {
	t.Run("ошибка: нельзя сменить пользователя", func(t *testing.T) {
		service, m := setupMembershipService(t, true)

		m.membershipRepo.On("GetByID", mock.Anything, 10).Return(alice(nil), nil).Once()

		changed := *alice(boolPtr(true))
		changed.UserID = 200

		_, err := service.UpdateMembership(context.Background(), changed)

		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		m.membershipRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: назначение менеджером без расширения", func(t *testing.T) {
		service, m := setupMembershipService(t, false)

		m.membershipRepo.On("GetByID", mock.Anything, 10).Return(alice(nil), nil).Once()

		_, err := service.UpdateMembership(context.Background(), *alice(boolPtr(true)))

		assert.True(t, errors.Is(err, domain.ErrFeatureDisabled))
		m.membershipRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("снятие роли без расширения разрешено", func(t *testing.T) {
		service, m := setupMembershipService(t, false)

		m.membershipRepo.On("GetByID", mock.Anything, 10).Return(alice(boolPtr(true)), nil).Once()
		m.membershipRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		m.membershipRepo.On("GetByID", mock.Anything, 10).Return(alice(boolPtr(false)), nil).Once()

		result, err := service.UpdateMembership(context.Background(), *alice(boolPtr(false)))

		require.NoError(t, err)
		assert.False(t, result.IsManager())
		m.membershipRepo.AssertExpectations(t)
	})
}

func TestMembershipService_AddMember(t *testing.T) {
	t.Run("успешное добавление", func(t *testing.T) {
		service, m := setupMembershipService(t, true)
		ctx := context.Background()

		m.groupRepo.On("GetByID", mock.Anything, 1).Return(&domain.Group{ID: 1}, nil).Once()
		m.userRepo.On("GetByID", mock.Anything, 100).Return(&domain.User{ID: 100}, nil).Once()
		m.membershipRepo.On("GetByGroupAndUser", mock.Anything, 1, 100).Return(nil, errors.New("membership not found")).Once()
		m.membershipRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Member).MembershipID = 10
		}).Return(nil).Once()
		m.membershipRepo.On("GetByID", mock.Anything, 10).Return(alice(boolPtr(true)), nil).Once()

		result, err := service.AddMember(ctx, 1, 100, boolPtr(true))

		require.NoError(t, err)
		assert.Equal(t, 10, result.MembershipID)
		assert.True(t, result.IsManager())
		m.groupRepo.AssertExpectations(t)
		m.userRepo.AssertExpectations(t)
		m.membershipRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пользователь уже в группе", func(t *testing.T) {
		service, m := setupMembershipService(t, true)
		ctx := context.Background()

		m.groupRepo.On("GetByID", mock.Anything, 1).Return(&domain.Group{ID: 1}, nil).Once()
		m.userRepo.On("GetByID", mock.Anything, 100).Return(&domain.User{ID: 100}, nil).Once()
		m.membershipRepo.On("GetByGroupAndUser", mock.Anything, 1, 100).Return(alice(nil), nil).Once()

		_, err := service.AddMember(ctx, 1, 100, nil)

		assert.True(t, errors.Is(err, domain.ErrMembershipExists))
		m.membershipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: группа не найдена", func(t *testing.T) {
		service, m := setupMembershipService(t, true)

		m.groupRepo.On("GetByID", mock.Anything, 99).Return(nil, errors.New("group not found")).Once()

		_, err := service.AddMember(context.Background(), 99, 100, nil)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка: менеджер без расширения", func(t *testing.T) {
		service, m := setupMembershipService(t, false)

		_, err := service.AddMember(context.Background(), 1, 100, boolPtr(true))

		assert.True(t, errors.Is(err, domain.ErrFeatureDisabled))
		m.groupRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestMembershipService_RemoveMember(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		service, m := setupMembershipService(t, true)

		m.membershipRepo.On("Delete", mock.Anything, 10).Return(nil).Once()

		require.NoError(t, service.RemoveMember(context.Background(), 10))
		m.membershipRepo.AssertExpectations(t)
	})

	t.Run("ошибка: членство не найдено", func(t *testing.T) {
		service, m := setupMembershipService(t, true)

		m.membershipRepo.On("Delete", mock.Anything, 99).Return(errors.New("membership not found")).Once()

		err := service.RemoveMember(context.Background(), 99)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestMembershipService_CanManageGroup(t *testing.T) {
	t.Run("суперпользователь", func(t *testing.T) {
		service, _ := setupMembershipService(t, false)

		ok, err := service.CanManageGroup(context.Background(), &domain.User{ID: 1, IsSuperuser: true}, 1)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("менеджер группы", func(t *testing.T) {
		service, m := setupMembershipService(t, true)

		m.membershipRepo.On("IsManagerOf", mock.Anything, 100, 1).Return(true, nil).Once()

		ok, err := service.CanManageGroup(context.Background(), &domain.User{ID: 100}, 1)

		require.NoError(t, err)
		assert.True(t, ok)
		m.membershipRepo.AssertExpectations(t)
	})

	t.Run("менеджер без расширения", func(t *testing.T) {
		service, m := setupMembershipService(t, false)

		ok, err := service.CanManageGroup(context.Background(), &domain.User{ID: 100}, 1)

		require.NoError(t, err)
		assert.False(t, ok)
		m.membershipRepo.AssertNotCalled(t, "IsManagerOf", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("нет пользователя", func(t *testing.T) {
		service, _ := setupMembershipService(t, true)

		ok, err := service.CanManageGroup(context.Background(), nil, 1)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
