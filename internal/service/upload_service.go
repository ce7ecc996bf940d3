package service

import (
	"context"
	"fmt"
	"io"

	"pressengine/internal/config"
	"pressengine/internal/storage"
)

type UploadService interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type uploadService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewUploadService(storage storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{
		storage: storage,
		cfg:     cfg,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("отправленный файл пустой")
	}

	if s.cfg.MaxUploadSize > 0 && size > s.cfg.MaxUploadSize {
		return "", fmt.Errorf("файл превышает максимальный размер %d байт", s.cfg.MaxUploadSize)
	}

	_, fileURL, err := s.storage.UploadFile(ctx, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	return fileURL, nil
}
