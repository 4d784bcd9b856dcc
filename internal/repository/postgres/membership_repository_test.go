package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMembershipRepo создает мок БД и репозиторий для Member
func setupMembershipRepo(t *testing.T) (*membershipRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewMembershipRepository(db), mock
}

func TestMembershipRepository_Create(t *testing.T) {
	t.Run("флаг отсутствует - сохраняется false", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		member := &domain.Member{GroupID: 1, UserID: 100}

		mock.ExpectQuery("INSERT INTO memberships").
			WithArgs(1, 100, false, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

		err := repo.Create(ctx, member)

		require.NoError(t, err)
		assert.Equal(t, 10, member.MembershipID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: пользователь уже в группе", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("INSERT INTO memberships").
			WithArgs(1, 100, true, sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		isManager := true
		err := repo.Create(ctx, &domain.Member{GroupID: 1, UserID: 100, IsGroupManager: &isManager})

		require.Error(t, err)
		assert.Equal(t, "membership already exists", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_GetByID(t *testing.T) {
	t.Run("успешное получение", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("FROM memberships m").
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(memberColumns).
				AddRow(10, 1, 100, "alice@example.com", "Alice", "Smith", false))

		member, err := repo.GetByID(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, 100, member.UserID)
		assert.Equal(t, "alice@example.com", member.Email)
		require.NotNil(t, member.IsGroupManager)
		assert.False(t, *member.IsGroupManager)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: членство не найдено", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("FROM memberships m").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(memberColumns))

		member, err := repo.GetByID(ctx, 99)

		require.Error(t, err)
		assert.Nil(t, member)
		assert.Equal(t, "membership not found", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_GetByGroupAndUser(t *testing.T) {
	repo, mock := setupMembershipRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("FROM memberships m").
		WithArgs(1, 100).
		WillReturnRows(sqlmock.NewRows(memberColumns))

	member, err := repo.GetByGroupAndUser(ctx, 1, 100)

	require.Error(t, err)
	assert.Nil(t, member)
	assert.Equal(t, "membership not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepository_Update(t *testing.T) {
	t.Run("успешное обновление флага", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		isManager := true
		mock.ExpectExec("UPDATE memberships").
			WithArgs(10, true, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Member{MembershipID: 10, IsGroupManager: &isManager})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: членство не найдено", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		mock.ExpectExec("UPDATE memberships").
			WithArgs(99, false, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Member{MembershipID: 99})

		require.Error(t, err)
		assert.Equal(t, "membership not found", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка базы", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		expectedError := errors.New("database error")
		mock.ExpectExec("UPDATE memberships").
			WithArgs(10, false, sqlmock.AnyArg()).
			WillReturnError(expectedError)

		err := repo.Update(ctx, &domain.Member{MembershipID: 10})

		assert.Equal(t, expectedError, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		mock.ExpectExec("DELETE FROM memberships").
			WithArgs(10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: членство не найдено", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)
		ctx := context.Background()

		mock.ExpectExec("DELETE FROM memberships").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 99)

		require.Error(t, err)
		assert.Equal(t, "membership not found", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_IsManagerOf(t *testing.T) {
	repo, mock := setupMembershipRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(100, 1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	isManager, err := repo.IsManagerOf(ctx, 100, 1)

	require.NoError(t, err)
	assert.True(t, isManager)
	assert.NoError(t, mock.ExpectationsWereMet())
}
