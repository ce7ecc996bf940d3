package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type CreateSolicitudRequest struct {
	UserID    string `json:"userId" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
	Motivo    string `json:"motivo" validate:"required"`
}

type UpdateSolicitudRequest struct {
	Estado string `json:"estado" validate:"required,oneof=PENDIENTE APROBADA RECHAZADA"`
}

// SolicitudResponse - наружу estado уходит в нижнем регистре, в БД хранится в верхнем
type SolicitudResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	Motivo         string    `json:"motivo"`
	Estado         string    `json:"estado"`
	FechaSolicitud time.Time `json:"fechaSolicitud"`
}

func toSolicitudResponse(s models.Solicitud) SolicitudResponse {
	return SolicitudResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		UserName:       s.UserName,
		UserEmail:      s.UserEmail,
		Motivo:         s.Motivo,
		Estado:         strings.ToLower(s.Estado),
		FechaSolicitud: s.FechaSolicitud,
	}
}

func (h *Handlers) CreateSolicitud(w http.ResponseWriter, r *http.Request) {
	var req CreateSolicitudRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заполните обязательные поля заявки", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateSolicitudRequest{
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Motivo:    req.Motivo,
	}

	solicitud, err := h.SolicitudService.Create(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else if strings.Contains(err.Error(), "не может отправлять") ||
			strings.Contains(err.Error(), "уже имеет права") ||
			strings.Contains(err.Error(), "уже есть заявка") {
			WriteError(w, err.Error(), http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, toSolicitudResponse(*solicitud), http.StatusCreated)
}

func (h *Handlers) GetSolicitudes(w http.ResponseWriter, r *http.Request) {
	solicitudes, err := h.SolicitudService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]SolicitudResponse, 0, len(solicitudes))
	for _, s := range solicitudes {
		response = append(response, toSolicitudResponse(s))
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) UpdateSolicitudEstado(w http.ResponseWriter, r *http.Request) {
	solicitudID := mux.Vars(r)["solicitudId"]

	var req UpdateSolicitudRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Недопустимый статус заявки", http.StatusBadRequest)
		return
	}

	solicitud, err := h.SolicitudService.UpdateEstado(r.Context(), solicitudID, req.Estado)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Заявка не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, toSolicitudResponse(*solicitud), http.StatusOK)
}
