package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные записи"
	msgNotFound             = "запись не найдена"
	msgClientNotFound       = "клиент не найден"
	msgReadingNotFound      = "расклад не найден"
	msgInvalidDuration      = "у расклада некорректная длительность, срок не рассчитать"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
// Срок пересчитывается при смене расклада или даты запроса, если не передан вручную.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.service.Update(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrClientNotFound):
			h.logger.Warn("PUT /appointments/{id} - Client not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, appointments.ErrReadingNotFound):
			h.logger.Warn("PUT /appointments/{id} - Reading not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgReadingNotFound)

		case errors.Is(err, appointments.ErrInvalidDuration):
			h.logger.Warn("PUT /appointments/{id} - Invalid reading duration: appointment_id=%s", appointmentID)
			handlers.RespondUnprocessable(w, msgInvalidDuration)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
