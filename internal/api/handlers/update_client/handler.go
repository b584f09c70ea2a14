package update_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/clients"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClient      = "некорректные данные клиента"
	msgNotFound           = "клиент не найден"
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

// Handle PUT /api/v1/clients/{clientId}
// Изменения имени, телефона и мессенджера переносятся в записи клиента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathUUID(r, "clientId")
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Update(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("PUT /clients/{id} - Invalid client: client_id=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidClient)

		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PUT /clients/{id} - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrPhoneAlreadyExists):
			h.logger.Warn("PUT /clients/{id} - Phone already exists: client_id=%s", clientID)
			handlers.RespondConflict(w, msgPhoneExists)

		default:
			h.logger.Error("PUT /clients/{id} - Failed to update client: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated successfully: client_id=%s", clientID)
	handlers.RespondJSON(w, http.StatusOK, client)
}
