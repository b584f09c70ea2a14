package create_reading

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog/models"
)

const (
	msgInvalidCategoryID  = "некорректный ID категории"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReading     = "некорректные данные расклада: нужны название и неотрицательная цена"
	msgInvalidDuration    = "некорректная длительность: значение должно быть положительным, единица minutes, hours или days"
	msgCategoryNotFound   = "категория не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/categories/{categoryId}/readings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID, err := handlers.PathUUID(r, "categoryId")
	if err != nil {
		h.logger.Warn("POST /categories/{id}/readings - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	var req models.CreateReadingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories/{id}/readings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reading, err := h.service.CreateReading(r.Context(), categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidDuration):
			h.logger.Warn("POST /categories/{id}/readings - Invalid duration: category_id=%s, error=%v", categoryID, err)
			handlers.RespondUnprocessable(w, msgInvalidDuration)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /categories/{id}/readings - Invalid reading: category_id=%s, error=%v", categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidReading)

		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("POST /categories/{id}/readings - Category not found: category_id=%s", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("POST /categories/{id}/readings - Failed to create reading: category_id=%s, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories/{id}/readings - Reading created successfully: reading_id=%s, category_id=%s",
		reading.ID, categoryID)
	handlers.RespondJSON(w, http.StatusCreated, reading)
}
