package update_category

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
	msgInvalidName        = "некорректное название категории"
	msgNotFound           = "категория не найдена"
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

// Handle PUT /api/v1/categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID, err := handlers.PathUUID(r, "categoryId")
	if err != nil {
		h.logger.Warn("PUT /categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	var req models.CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /categories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /categories/{id} - Invalid category: category_id=%s, error=%v", categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("PUT /categories/{id} - Category not found: category_id=%s", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /categories/{id} - Failed to update category: category_id=%s, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /categories/{id} - Category updated successfully: category_id=%s", categoryID)
	handlers.RespondJSON(w, http.StatusOK, category)
}
