package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pressengine/internal/models"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// CollectionCounts считает документы в каждой коллекции - для панели администратора
func (r *statsRepository) CollectionCounts(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM posts) AS posts,
			(SELECT COUNT(*) FROM comments) AS comments,
			(SELECT COUNT(*) FROM advertisements) AS advertisements,
			(SELECT COUNT(*) FROM solicitudes) AS solicitudes
	`

	var stats models.Stats
	err := r.db.GetContext(ctx, &stats, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте документов: %w", err)
	}

	return &stats, nil
}
