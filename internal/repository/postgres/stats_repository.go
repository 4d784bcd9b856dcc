package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetGroupStats(ctx context.Context) ([]*domain.GroupStat, error) {
	query := `
		SELECT g.id, g.name,
			COUNT(m.id) AS member_count,
			COUNT(m.id) FILTER (WHERE m.is_group_manager) AS manager_count
		FROM groups g
		LEFT JOIN memberships m ON m.group_id = g.id
		GROUP BY g.id, g.name
		ORDER BY member_count DESC, g.name
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.GroupStat
	for rows.Next() {
		stat := &domain.GroupStat{}
		err := rows.Scan(&stat.GroupID, &stat.GroupName, &stat.MemberCount, &stat.ManagerCount)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
