package repository

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type StatsRepository interface {
	GetGroupStats(ctx context.Context) ([]*domain.GroupStat, error)
}
