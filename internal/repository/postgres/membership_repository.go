package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

func NewMembershipRepositoryWithTx(tx *sql.Tx) *membershipRepository {
	return &membershipRepository{executor: tx}
}

const selectMember = `
	SELECT m.id, m.group_id, m.user_id, u.email, u.first_name, u.last_name, m.is_group_manager
	FROM memberships m
	JOIN users u ON u.id = m.user_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (domain.Member, error) {
	var member domain.Member
	var isGroupManager bool
	err := row.Scan(
		&member.MembershipID,
		&member.GroupID,
		&member.UserID,
		&member.Email,
		&member.FirstName,
		&member.LastName,
		&isGroupManager,
	)
	if err != nil {
		return domain.Member{}, err
	}
	member.IsGroupManager = &isGroupManager
	return member, nil
}

func (r *membershipRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO memberships (group_id, user_id, is_group_manager, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.GroupID,
		member.UserID,
		member.IsManager(),
		time.Now(),
	).Scan(&member.MembershipID)
	if err != nil {
		if isUniqueViolation(err) {
			return errMembershipExists
		}
		return err
	}

	return nil
}

func (r *membershipRepository) GetByID(ctx context.Context, membershipID int) (*domain.Member, error) {
	query := selectMember + `WHERE m.id = $1`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, membershipID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errMembershipNotFound
		}
		return nil, err
	}

	return &member, nil
}

func (r *membershipRepository) GetByGroupAndUser(ctx context.Context, groupID int, userID int) (*domain.Member, error) {
	query := selectMember + `WHERE m.group_id = $1 AND m.user_id = $2`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, groupID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errMembershipNotFound
		}
		return nil, err
	}

	return &member, nil
}

func (r *membershipRepository) ListByGroupID(ctx context.Context, groupID int) ([]domain.Member, error) {
	query := selectMember + `WHERE m.group_id = $1 ORDER BY m.id`

	rows, err := r.executor.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// Update сохраняет запись целиком. Группа и пользователь у членства не меняются,
// поэтому в базу уходит только флаг.
func (r *membershipRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE memberships
		SET is_group_manager = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, member.MembershipID, member.IsManager(), time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errMembershipNotFound
	}

	return nil
}

func (r *membershipRepository) Delete(ctx context.Context, membershipID int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, membershipID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errMembershipNotFound
	}

	return nil
}

func (r *membershipRepository) IsManagerOf(ctx context.Context, userID int, groupID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM memberships
			WHERE user_id = $1 AND group_id = $2 AND is_group_manager = TRUE
		)
	`

	var isManager bool
	if err := r.executor.QueryRowContext(ctx, query, userID, groupID).Scan(&isManager); err != nil {
		return false, err
	}

	return isManager, nil
}
