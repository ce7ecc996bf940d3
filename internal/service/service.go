package service

import (
	"pressengine/internal/config"
	"pressengine/internal/repository"
	"pressengine/internal/storage"
)

type Service struct {
	User          UserService
	Post          PostService
	Comment       CommentService
	Advertisement AdvertisementService
	Solicitud     SolicitudService
	Upload        UploadService
	Stats         StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User:          NewUserService(rep.User),
		Post:          NewPostService(rep.Post, rep.User),
		Comment:       NewCommentService(rep.Comment, rep.Post),
		Advertisement: NewAdvertisementService(rep.Advertisement),
		Solicitud:     NewSolicitudService(rep.Solicitud, rep.User),
		Upload:        NewUploadService(storage, cfg),
		Stats:         NewStatsService(rep.Stats),
	}
}
