package create_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/clients"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClient      = "некорректные данные клиента: нужны имя и телефон"
	msgPhoneExists        = "клиент с таким телефоном уже существует"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid client: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClient)

		case errors.Is(err, clients.ErrPhoneAlreadyExists):
			h.logger.Warn("POST /clients - Phone already exists: phone=%s", req.Phone)
			handlers.RespondConflict(w, msgPhoneExists)

		default:
			h.logger.Error("POST /clients - Failed to create client: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created successfully: client_id=%s", client.ID)
	handlers.RespondJSON(w, http.StatusCreated, client)
}
