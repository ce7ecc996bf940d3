package handlers

import (
	"github.com/go-playground/validator/v10"

	"pressengine/internal/config"
	"pressengine/internal/repository"
	"pressengine/internal/service"
)

type Handlers struct {
	UserService      service.UserService
	UserRepo         repository.UserRepository
	PostService      service.PostService
	CommentService   service.CommentService
	AdService        service.AdvertisementService
	SolicitudService service.SolicitudService
	UploadService    service.UploadService
	StatsService     service.StatsService
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:      service.User,
		UserRepo:         repo.User,
		PostService:      service.Post,
		CommentService:   service.Comment,
		AdService:        service.Advertisement,
		SolicitudService: service.Solicitud,
		UploadService:    service.Upload,
		StatsService:     service.Stats,
		Cfg:              config,
		Validate:         validator.New(),
	}
}
