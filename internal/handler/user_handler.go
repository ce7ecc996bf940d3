package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=READER WRITER ADMIN"`
}

type UserActionRequest struct {
	Accion string `json:"accion" validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		if strings.Contains(err.Error(), "Email") {
			WriteError(w, "Неверный формат email", http.StatusBadRequest)
		} else if strings.Contains(err.Error(), "Password") {
			WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		} else {
			WriteError(w, "Неверные данные", http.StatusBadRequest)
		}
		return
	}

	serviceReq := repository.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	// регистрируем пользователя
	user, err := h.UserService.Register(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "уже существует") {
			WriteError(w, "Email уже зарегистрирован", http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// любая ошибка входа - 401, причину наружу не раскрываем детальнее сообщения
	user, token, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, LoginResponse{User: *user, Token: token}, http.StatusOK)
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	WriteSuccess(w, users, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Роль должна быть READER, WRITER или ADMIN", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateRole(r.Context(), userID, req.Role)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) ApplyUserAction(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req UserActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует действие", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.ApplyAction(r.Context(), userID, req.Accion)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else if strings.Contains(err.Error(), "неподдерживаемое действие") {
			WriteError(w, err.Error(), http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
