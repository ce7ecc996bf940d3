package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type CreatePostRequest struct {
	Title      string  `json:"title" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	AuthorID   string  `json:"authorId" validate:"required"`
	AuthorName string  `json:"authorName"`
	Category   string  `json:"category" validate:"required"`
	ImageURL   *string `json:"imageUrl"`
}

type ReviewPostRequest struct {
	Status       string  `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED DELETED"`
	Feedback     *string `json:"feedback"`
	DeleteReason *string `json:"deleteReason"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заполните обязательные поля новости", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreatePostRequest{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
	}

	post, err := h.PostService.Create(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Автор не найден", http.StatusNotFound)
		} else if strings.Contains(err.Error(), "не может создавать") {
			WriteError(w, err.Error(), http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPendingPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetPending(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPostsByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID := mux.Vars(r)["authorId"]

	posts, err := h.PostService.GetByAuthor(r.Context(), authorID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	post, err := h.PostService.GetByID(r.Context(), postID)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Новость не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) ReviewPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	var req ReviewPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Недопустимый статус новости", http.StatusBadRequest)
		return
	}

	serviceReq := repository.ReviewPostRequest{
		PostID:       postID,
		Status:       req.Status,
		Feedback:     req.Feedback,
		DeleteReason: req.DeleteReason,
	}

	post, err := h.PostService.Review(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Новость не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}
