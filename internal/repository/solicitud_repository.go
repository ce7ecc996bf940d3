package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pressengine/internal/models"
)

type solicitudRepository struct {
	db *sqlx.DB
}

type CreateSolicitudRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Motivo    string `json:"motivo"`
}

func NewSolicitudRepository(db *sqlx.DB) SolicitudRepository {
	return &solicitudRepository{db: db}
}

func (r *solicitudRepository) Create(ctx context.Context, solicitud *models.Solicitud) error {
	query := `
		INSERT INTO solicitudes (id, user_id, user_name, user_email, motivo, estado, fecha_solicitud)
		VALUES (:id, :user_id, :user_name, :user_email, :motivo, :estado, :fecha_solicitud)
	`

	if solicitud.ID == "" {
		solicitud.ID = uuid.New().String()
	}

	if solicitud.FechaSolicitud.IsZero() {
		solicitud.FechaSolicitud = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, solicitud)
	if err != nil {
		// частичный уникальный индекс - защита от гонки двух одновременных заявок
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("у пользователя уже есть заявка на рассмотрении")
		}
		return fmt.Errorf("ошибка при создании заявки: %w", err)
	}

	return nil
}

func (r *solicitudRepository) GetByID(ctx context.Context, solicitudID string) (*models.Solicitud, error) {
	query := `SELECT * FROM solicitudes WHERE id = $1`

	var solicitud models.Solicitud
	err := r.db.GetContext(ctx, &solicitud, query, solicitudID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("заявка с ID %s не найдена", solicitudID)
		}
		return nil, fmt.Errorf("ошибка при получении заявки: %w", err)
	}

	return &solicitud, nil
}

func (r *solicitudRepository) GetAll(ctx context.Context) ([]models.Solicitud, error) {
	query := `SELECT * FROM solicitudes ORDER BY fecha_solicitud DESC`

	var solicitudes []models.Solicitud
	err := r.db.SelectContext(ctx, &solicitudes, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка заявок: %w", err)
	}

	return solicitudes, nil
}

func (r *solicitudRepository) HasPendiente(ctx context.Context, userID string) (bool, error) {
	query := `SELECT COUNT(*) FROM solicitudes WHERE user_id = $1 AND estado = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, models.SolicitudPendiente)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке заявок пользователя: %w", err)
	}

	return count > 0, nil
}

func (r *solicitudRepository) Update(ctx context.Context, solicitud *models.Solicitud) error {
	query := `
		UPDATE solicitudes
		SET estado = :estado
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, solicitud)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении заявки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("заявка с ID %s не найдена", solicitud.ID)
	}

	return nil
}
