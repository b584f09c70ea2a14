package delete_category

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgNotFound          = "категория не найдена"
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

// Handle DELETE /api/v1/categories/{categoryId}
// Удаляет категорию, ее расклады и записи на эти расклады.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID, err := handlers.PathUUID(r, "categoryId")
	if err != nil {
		h.logger.Warn("DELETE /categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("DELETE /categories/{id} - Category not found: category_id=%s", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /categories/{id} - Failed to delete category: category_id=%s, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /categories/{id} - Category deleted successfully: category_id=%s", categoryID)
	handlers.RespondNoContent(w)
}
