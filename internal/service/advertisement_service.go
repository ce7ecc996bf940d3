package service

import (
	"context"
	"fmt"
	"strings"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type AdvertisementService interface {
	Create(ctx context.Context, req repository.CreateAdvertisementRequest) (*models.Advertisement, error)
	GetAll(ctx context.Context) ([]models.Advertisement, error)
	UpdateStatus(ctx context.Context, req repository.UpdateAdvertisementRequest) (*models.Advertisement, error)
	Delete(ctx context.Context, adID string) error
}

type advertisementService struct {
	adRepo repository.AdvertisementRepository
}

func NewAdvertisementService(adRepo repository.AdvertisementRepository) AdvertisementService {
	return &advertisementService{adRepo: adRepo}
}

func (s *advertisementService) Create(ctx context.Context, req repository.CreateAdvertisementRequest) (*models.Advertisement, error) {
	if req.DurationDays <= 0 {
		return nil, fmt.Errorf("длительность размещения должна быть больше 0")
	}

	brand := strings.TrimSpace(req.Brand)
	description := strings.TrimSpace(req.Description)

	if brand == "" {
		return nil, fmt.Errorf("бренд не может быть пустым")
	}

	if description == "" {
		return nil, fmt.Errorf("описание не может быть пустым")
	}

	ad := &models.Advertisement{
		Brand:        brand,
		UserID:       req.UserID,
		UserName:     req.UserName,
		Description:  description,
		DurationDays: req.DurationDays,
		Paid:         false,
		Status:       models.AdStatusPending,
	}

	err := s.adRepo.Create(ctx, ad)
	if err != nil {
		return nil, err
	}

	return ad, nil
}

func (s *advertisementService) GetAll(ctx context.Context) ([]models.Advertisement, error) {
	return s.adRepo.GetAll(ctx)
}

// UpdateStatus работает как и ревью новости: статус ставится безусловно,
// причина отклонения очищается при одобрении
func (s *advertisementService) UpdateStatus(ctx context.Context, req repository.UpdateAdvertisementRequest) (*models.Advertisement, error) {
	ad, err := s.adRepo.GetByID(ctx, req.AdID)
	if err != nil {
		return nil, err
	}

	ad.Status = req.Status
	ad.RejectionReason = normalizeReason(req.RejectionReason)

	if req.Status == models.AdStatusApproved {
		ad.RejectionReason = nil
	}

	err = s.adRepo.Update(ctx, ad)
	if err != nil {
		return nil, err
	}

	return ad, nil
}

func (s *advertisementService) Delete(ctx context.Context, adID string) error {
	return s.adRepo.Delete(ctx, adID)
}
