package service

import (
	"context"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type StatsService interface {
	GetCollectionCounts(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (t *statsService) GetCollectionCounts(ctx context.Context) (*models.Stats, error) {
	stats, err := t.statsRepo.CollectionCounts(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
