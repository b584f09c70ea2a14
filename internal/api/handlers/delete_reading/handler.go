package delete_reading

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog"
)

const (
	msgInvalidReadingID = "некорректный ID расклада"
	msgNotFound         = "расклад не найден"
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

// Handle DELETE /api/v1/readings/{readingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	readingID, err := handlers.PathUUID(r, "readingId")
	if err != nil {
		h.logger.Warn("DELETE /readings/{id} - Invalid reading ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReadingID)
		return
	}

	if err := h.service.DeleteReading(r.Context(), readingID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrReadingNotFound):
			h.logger.Warn("DELETE /readings/{id} - Reading not found: reading_id=%s", readingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /readings/{id} - Failed to delete reading: reading_id=%s, error=%v", readingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /readings/{id} - Reading deleted successfully: reading_id=%s", readingID)
	handlers.RespondNoContent(w)
}
