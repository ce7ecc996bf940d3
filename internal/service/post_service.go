package service

import (
	"context"
	"fmt"
	"strings"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type PostService interface {
	Create(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetPending(ctx context.Context) ([]models.Post, error)
	GetByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Review(ctx context.Context, req repository.ReviewPostRequest) (*models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (p *postService) Create(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	author, err := p.userRepo.GetUserByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	// публиковать могут только активные пользователи
	if author.Status != models.UserStatusActive {
		return nil, fmt.Errorf("пользователь не может создавать публикации в текущем статусе")
	}

	// имя автора по умолчанию берем из профиля
	authorName := strings.TrimSpace(req.AuthorName)
	if authorName == "" {
		authorName = author.Name
	}

	post := &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   author.ID,
		AuthorName: authorName,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
		Status:     models.PostStatusPending,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetAll(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

func (p *postService) GetPending(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetByStatus(ctx, models.PostStatusPending)
}

func (p *postService) GetByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return p.postRepo.GetByAuthorID(ctx, authorID)
}

func (p *postService) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

// Review применяет решение редактора: статус ставится безусловно,
// пустые причины превращаются в null, при одобрении причины всегда очищаются
func (p *postService) Review(ctx context.Context, req repository.ReviewPostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Status = req.Status
	post.Feedback = normalizeReason(req.Feedback)
	post.DeleteReason = normalizeReason(req.DeleteReason)

	// одобрение и причины отклонения/удаления взаимоисключающие
	if req.Status == models.PostStatusApproved {
		post.Feedback = nil
		post.DeleteReason = nil
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// normalizeReason превращает пустую строку в отсутствующее значение
func normalizeReason(reason *string) *string {
	if reason == nil || strings.TrimSpace(*reason) == "" {
		return nil
	}
	return reason
}
