package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pressengine/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByStatus(ctx context.Context, status string) ([]models.Post, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *models.Advertisement) error
	GetByID(ctx context.Context, adID string) (*models.Advertisement, error)
	GetAll(ctx context.Context) ([]models.Advertisement, error)
	Update(ctx context.Context, ad *models.Advertisement) error
	Delete(ctx context.Context, adID string) error
}

type SolicitudRepository interface {
	Create(ctx context.Context, solicitud *models.Solicitud) error
	GetByID(ctx context.Context, solicitudID string) (*models.Solicitud, error)
	GetAll(ctx context.Context) ([]models.Solicitud, error)
	HasPendiente(ctx context.Context, userID string) (bool, error)
	Update(ctx context.Context, solicitud *models.Solicitud) error
}

type StatsRepository interface {
	CollectionCounts(ctx context.Context) (*models.Stats, error)
}

type Repository struct {
	User          UserRepository
	Post          PostRepository
	Comment       CommentRepository
	Advertisement AdvertisementRepository
	Solicitud     SolicitudRepository
	Stats         StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:          NewUserRepository(db),
		Post:          NewPostRepository(db),
		Comment:       NewCommentRepository(db),
		Advertisement: NewAdvertisementRepository(db),
		Solicitud:     NewSolicitudRepository(db),
		Stats:         NewStatsRepository(db),
	}
}
