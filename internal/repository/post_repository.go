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

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	AuthorID   string  `json:"authorId"`
	AuthorName string  `json:"authorName"`
	Category   string  `json:"category"`
	ImageURL   *string `json:"imageUrl"`
}

type ReviewPostRequest struct {
	PostID       string  `json:"postId"`
	Status       string  `json:"status"`
	Feedback     *string `json:"feedback"`
	DeleteReason *string `json:"deleteReason"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (id, title, content, author_id, author_name, category, image_url, feedback, delete_reason, status, created_at, updated_at)
        VALUES
        (:id, :title, :content, :author_id, :author_name, :category, :image_url, :feedback, :delete_reason, :status, :created_at, :updated_at)
    `

	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании новости: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("новость с ID %s не найдена", postID)
		}
		return nil, fmt.Errorf("ошибка при получении новости: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        ORDER BY created_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении новостей: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByStatus(ctx context.Context, status string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE status = $1
        ORDER BY created_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении новостей по статусу: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE author_id = $1
        ORDER BY created_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении новостей автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			category = :category,
			image_url = :image_url,
			feedback = :feedback,
			delete_reason = :delete_reason,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	post.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении новости: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("новость с ID %s не найдена", post.ID)
	}

	return nil
}
