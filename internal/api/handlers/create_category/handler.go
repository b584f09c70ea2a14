package create_category

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное название категории"
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

// Handle POST /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /categories - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /categories - Failed to create category: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories - Category created successfully: category_id=%s", category.ID)
	handlers.RespondJSON(w, http.StatusCreated, category)
}
