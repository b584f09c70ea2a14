package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или YYYY-MM-DDTHH:MM:SS"
	msgInvalidInput       = "укажите существующего клиента или имя и телефон нового, текст запроса не длиннее лимита"
	msgClientNotFound     = "клиент не найден"
	msgReadingNotFound    = "расклад не найден"
	msgInvalidDuration    = "у расклада некорректная длительность, срок не рассчитать"
	msgPhoneConflict      = "клиент с таким телефоном только что создан, повторите запрос"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%v", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrReadingNotFound):
			h.logger.Warn("POST /appointments - Reading not found: reading_id=%s", req.ReadingID)
			handlers.RespondNotFound(w, msgReadingNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid reading duration: reading_id=%s", req.ReadingID)
			handlers.RespondUnprocessable(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrPhoneConflict):
			h.logger.Warn("POST /appointments - Phone conflict: %v", err)
			handlers.RespondConflict(w, msgPhoneConflict)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: reading_id=%s, error=%v", req.ReadingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, client_id=%s",
		result.Appointment.ID, result.Appointment.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
