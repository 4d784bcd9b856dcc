package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, first_name, last_name, is_superuser, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.IsSuperuser,
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return err
	}

	user.UpdatedAt = nil

	return nil
}

// GetByID загружает пользователя; is_group_manager в правах означает,
// что пользователь управляет хотя бы одной группой
func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.is_superuser, u.created_at, u.updated_at,
			EXISTS (
				SELECT 1 FROM memberships m
				WHERE m.user_id = u.id AND m.is_group_manager = TRUE
			) AS is_group_manager
		FROM users u
		WHERE u.id = $1
	`

	user := &domain.User{}
	var updatedAt sql.NullTime
	var isGroupManager bool
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.IsSuperuser,
		&user.CreatedAt,
		&updatedAt,
		&isGroupManager,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errUserNotFound
		}
		return nil, err
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}
	user.Permissions = &domain.UserPermissions{IsGroupManager: &isGroupManager}

	return user, nil
}
