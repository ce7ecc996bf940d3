package handlers

import (
	"net/http"
	"strings"
)

type UploadResponse struct {
	URL string `json:"url"`
}

// allowedImageTypes - типы файлов, которые принимаем как изображения
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось прочитать файл из поля image", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "Недопустимый тип файла, ожидается изображение", http.StatusBadRequest)
		return
	}

	url, err := h.UploadService.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		if strings.Contains(err.Error(), "пустой") ||
			strings.Contains(err.Error(), "превышает") {
			WriteError(w, err.Error(), http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, UploadResponse{URL: url}, http.StatusOK)
}
