package service

import (
	"context"
	"fmt"
	"strings"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) Create(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("комментарий не может быть пустым")
	}

	// новость должна существовать на момент создания комментария.
	// userId при этом не проверяется - так ведет себя продукт
	_, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   req.PostID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Content:  content,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetAll(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepo.GetAll(ctx)
}

func (s *commentService) GetByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}

func (s *commentService) Delete(ctx context.Context, commentID string) error {
	return s.commentRepo.Delete(ctx, commentID)
}
