package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type groupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) *groupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	query := `
		INSERT INTO groups (name, created_at)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, group.Name, time.Now()).Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errGroupExists
		}
		return err
	}

	group.UpdatedAt = nil
	group.Members = []domain.Member{}
	group.MemberCount = 0

	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id int) (*domain.Group, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM groups
		WHERE id = $1
	`

	return r.getOne(ctx, query, id)
}

func (r *groupRepository) GetByName(ctx context.Context, name string) (*domain.Group, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM groups
		WHERE name = $1
	`

	return r.getOne(ctx, query, name)
}

// getOne читает группу и её участников в порядке членства
func (r *groupRepository) getOne(ctx context.Context, query string, arg any) (*domain.Group, error) {
	group := &domain.Group{}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errGroupNotFound
		}
		return nil, err
	}

	if updatedAt.Valid {
		group.UpdatedAt = &updatedAt.Time
	}

	membershipRepo := NewMembershipRepository(r.db)
	members, err := membershipRepo.ListByGroupID(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	group.Members = members
	group.MemberCount = len(members)

	return group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]*domain.Group, error) {
	query := `
		SELECT g.id, g.name, COUNT(m.id) AS member_count, g.created_at, g.updated_at
		FROM groups g
		LEFT JOIN memberships m ON m.group_id = g.id
		GROUP BY g.id, g.name, g.created_at, g.updated_at
		ORDER BY g.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		group := &domain.Group{}
		var updatedAt sql.NullTime
		if err := rows.Scan(&group.ID, &group.Name, &group.MemberCount, &group.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			group.UpdatedAt = &updatedAt.Time
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}
