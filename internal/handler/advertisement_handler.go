package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type CreateAdvertisementRequest struct {
	Brand        string `json:"brand" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
	UserName     string `json:"userName" validate:"required"`
	Description  string `json:"description" validate:"required"`
	DurationDays int    `json:"durationDays" validate:"required"`
}

type UpdateAdvertisementRequest struct {
	Status          string  `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
	RejectionReason *string `json:"rejectionReason"`
}

func (h *Handlers) CreateAdvertisement(w http.ResponseWriter, r *http.Request) {
	var req CreateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заполните обязательные поля рекламы", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateAdvertisementRequest{
		Brand:        req.Brand,
		UserID:       req.UserID,
		UserName:     req.UserName,
		Description:  req.Description,
		DurationDays: req.DurationDays,
	}

	ad, err := h.AdService.Create(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "должна быть больше") ||
			strings.Contains(err.Error(), "не может быть пустым") {
			WriteError(w, err.Error(), http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, ad, http.StatusCreated)
}

func (h *Handlers) GetAdvertisements(w http.ResponseWriter, r *http.Request) {
	ads, err := h.AdService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if ads == nil {
		ads = []models.Advertisement{}
	}

	WriteSuccess(w, ads, http.StatusOK)
}

func (h *Handlers) UpdateAdvertisementStatus(w http.ResponseWriter, r *http.Request) {
	adID := mux.Vars(r)["adId"]

	var req UpdateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Недопустимый статус рекламы", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateAdvertisementRequest{
		AdID:            adID,
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
	}

	ad, err := h.AdService.UpdateStatus(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Публикация рекламы не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, ad, http.StatusOK)
}

func (h *Handlers) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	adID := mux.Vars(r)["adId"]

	err := h.AdService.Delete(r.Context(), adID)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Публикация рекламы не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
