//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/repository/postgres"
	"github.com/bagdasarian/group-managers/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	groupService := service.NewGroupService(postgres.NewGroupRepository(db))
	statsService := service.NewStatsService(postgres.NewStatsRepository(db))

	alice := &domain.User{Email: "alice@example.com", FirstName: "Alice"}
	bob := &domain.User{Email: "bob@example.com", FirstName: "Bob"}
	seedUsers(t, db, alice, bob)

	analysts, err := groupService.CreateGroup(ctx, "Analysts")
	require.NoError(t, err)
	_, err = groupService.CreateGroup(ctx, "Empty")
	require.NoError(t, err)

	isManager := true
	seedMemberships(t, db,
		&domain.Member{GroupID: analysts.ID, UserID: alice.ID, IsGroupManager: &isManager},
		&domain.Member{GroupID: analysts.ID, UserID: bob.ID},
	)

	stats, err := statsService.GetGroupStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byName := make(map[string]*domain.GroupStat, len(stats))
	for _, stat := range stats {
		byName[stat.GroupName] = stat
	}

	assert.Equal(t, 2, byName["Analysts"].MemberCount)
	assert.Equal(t, 1, byName["Analysts"].ManagerCount)
	assert.Equal(t, 0, byName["Empty"].MemberCount)
	assert.Equal(t, 0, byName["Empty"].ManagerCount)
}
