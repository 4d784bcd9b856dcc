package service

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetGroupStats(ctx context.Context) ([]*domain.GroupStat, error) {
	stats, err := s.statsRepo.GetGroupStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []*domain.GroupStat{}
	}
	return stats, nil
}
