package update_reading

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog/models"
)

const (
	msgInvalidReadingID   = "некорректный ID расклада"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReading     = "некорректные данные расклада"
	msgInvalidDuration    = "некорректная длительность: значение должно быть положительным, единица minutes, hours или days"
	msgNotFound           = "расклад не найден"
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

// Handle PUT /api/v1/readings/{readingId}
// Новое название и цена переносятся в записи на этот расклад, сроки записей не пересчитываются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	readingID, err := handlers.PathUUID(r, "readingId")
	if err != nil {
		h.logger.Warn("PUT /readings/{id} - Invalid reading ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReadingID)
		return
	}

	var req models.UpdateReadingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /readings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reading, err := h.service.UpdateReading(r.Context(), readingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidDuration):
			h.logger.Warn("PUT /readings/{id} - Invalid duration: reading_id=%s, error=%v", readingID, err)
			handlers.RespondUnprocessable(w, msgInvalidDuration)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /readings/{id} - Invalid reading: reading_id=%s, error=%v", readingID, err)
			handlers.RespondBadRequest(w, msgInvalidReading)

		case errors.Is(err, catalog.ErrReadingNotFound):
			h.logger.Warn("PUT /readings/{id} - Reading not found: reading_id=%s", readingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /readings/{id} - Failed to update reading: reading_id=%s, error=%v", readingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /readings/{id} - Reading updated successfully: reading_id=%s", readingID)
	handlers.RespondJSON(w, http.StatusOK, reading)
}
