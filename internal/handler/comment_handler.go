package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type CreateCommentRequest struct {
	PostID   string `json:"postId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	UserName string `json:"userName" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заполните обязательные поля комментария", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateCommentRequest{
		PostID:   req.PostID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Content:  req.Content,
	}

	comment, err := h.CommentService.Create(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Новость не найдена", http.StatusNotFound)
		} else if strings.Contains(err.Error(), "не может быть пустым") {
			WriteError(w, err.Error(), http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

// GetComments возвращает все комментарии, либо комментарии одной новости
// при наличии query-параметра postId
func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("postId")

	var comments []models.Comment
	var err error

	if postID != "" {
		comments, err = h.CommentService.GetByPost(r.Context(), postID)
	} else {
		comments, err = h.CommentService.GetAll(r.Context())
	}

	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["commentId"]

	err := h.CommentService.Delete(r.Context(), commentID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Комментарий не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
