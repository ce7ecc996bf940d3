package handlers

import (
	"net/http"
)

// GetStats отдает количество документов по каждой коллекции
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.GetCollectionCounts(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}

// HealthHandler - проверка живости сервиса
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
