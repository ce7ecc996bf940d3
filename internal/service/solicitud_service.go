package service

import (
	"context"
	"fmt"
	"strings"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type SolicitudService interface {
	Create(ctx context.Context, req repository.CreateSolicitudRequest) (*models.Solicitud, error)
	GetAll(ctx context.Context) ([]models.Solicitud, error)
	UpdateEstado(ctx context.Context, solicitudID, estado string) (*models.Solicitud, error)
}

type solicitudService struct {
	solicitudRepo repository.SolicitudRepository
	userRepo      repository.UserRepository
}

func NewSolicitudService(solicitudRepo repository.SolicitudRepository, userRepo repository.UserRepository) SolicitudService {
	return &solicitudService{
		solicitudRepo: solicitudRepo,
		userRepo:      userRepo,
	}
}

func (s *solicitudService) Create(ctx context.Context, req repository.CreateSolicitudRequest) (*models.Solicitud, error) {
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if user.Status != models.UserStatusActive {
		return nil, fmt.Errorf("пользователь не может отправлять заявки в текущем статусе")
	}

	if user.Role == models.RoleWriter || user.Role == models.RoleAdmin {
		return nil, fmt.Errorf("пользователь уже имеет права на публикацию")
	}

	// не больше одной заявки в статусе PENDIENTE на пользователя
	hasPendiente, err := s.solicitudRepo.HasPendiente(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if hasPendiente {
		return nil, fmt.Errorf("у пользователя уже есть заявка на рассмотрении")
	}

	solicitud := &models.Solicitud{
		UserID:    user.ID,
		UserName:  req.UserName,
		UserEmail: strings.ToLower(strings.TrimSpace(req.UserEmail)),
		Motivo:    req.Motivo,
		Estado:    models.SolicitudPendiente,
	}

	err = s.solicitudRepo.Create(ctx, solicitud)
	if err != nil {
		return nil, err
	}

	return solicitud, nil
}

func (s *solicitudService) GetAll(ctx context.Context) ([]models.Solicitud, error) {
	return s.solicitudRepo.GetAll(ctx)
}

// UpdateEstado перезаписывает статус заявки. Роль пользователя при одобрении
// не меняется - повышение до WRITER делается отдельно через updateRole
func (s *solicitudService) UpdateEstado(ctx context.Context, solicitudID, estado string) (*models.Solicitud, error) {
	solicitud, err := s.solicitudRepo.GetByID(ctx, solicitudID)
	if err != nil {
		return nil, err
	}

	solicitud.Estado = estado

	err = s.solicitudRepo.Update(ctx, solicitud)
	if err != nil {
		return nil, err
	}

	return solicitud, nil
}
