package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pressengine/internal/models"
)

type advertisementRepository struct {
	db *sqlx.DB
}

type CreateAdvertisementRequest struct {
	Brand        string `json:"brand"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Description  string `json:"description"`
	DurationDays int    `json:"durationDays"`
}

type UpdateAdvertisementRequest struct {
	AdID            string  `json:"adId"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason"`
}

func NewAdvertisementRepository(db *sqlx.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *models.Advertisement) error {
	query := `
		INSERT INTO advertisements
		(id, brand, user_id, user_name, description, duration_days, paid, start_date, end_date, status, rejection_reason, created_at, updated_at)
		VALUES
		(:id, :brand, :user_id, :user_name, :description, :duration_days, :paid, :start_date, :end_date, :status, :rejection_reason, :created_at, :updated_at)
	`

	if ad.ID == "" {
		ad.ID = uuid.New().String()
	}

	now := time.Now()
	ad.CreatedAt = now
	ad.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, ad)
	if err != nil {
		return fmt.Errorf("ошибка при создании публикации рекламы: %w", err)
	}

	return nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, adID string) (*models.Advertisement, error) {
	query := `SELECT * FROM advertisements WHERE id = $1`

	var ad models.Advertisement
	err := r.db.GetContext(ctx, &ad, query, adID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("публикация рекламы с ID %s не найдена", adID)
		}
		return nil, fmt.Errorf("ошибка при получении публикации рекламы: %w", err)
	}

	return &ad, nil
}

func (r *advertisementRepository) GetAll(ctx context.Context) ([]models.Advertisement, error) {
	query := `SELECT * FROM advertisements ORDER BY created_at DESC`

	var ads []models.Advertisement
	err := r.db.SelectContext(ctx, &ads, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка рекламы: %w", err)
	}

	return ads, nil
}

func (r *advertisementRepository) Update(ctx context.Context, ad *models.Advertisement) error {
	query := `
		UPDATE advertisements SET
			brand = :brand,
			description = :description,
			duration_days = :duration_days,
			paid = :paid,
			start_date = :start_date,
			end_date = :end_date,
			status = :status,
			rejection_reason = :rejection_reason,
			updated_at = :updated_at
		WHERE id = :id
	`

	ad.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, ad)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении публикации рекламы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("публикация рекламы с ID %s не найдена", ad.ID)
	}

	return nil
}

func (r *advertisementRepository) Delete(ctx context.Context, adID string) error {
	query := `DELETE FROM advertisements WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, adID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении публикации рекламы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("публикация рекламы с ID %s не найдена", adID)
	}

	return nil
}
