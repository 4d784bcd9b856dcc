package service

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type StatsService interface {
	GetGroupStats(ctx context.Context) ([]*domain.GroupStat, error)
}
