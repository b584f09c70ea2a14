package autofill_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	autofillAppointment "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/autofill_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidText        = "сообщение пустое или слишком длинное"
)

type Handler struct {
	useCase AutofillUseCase
	logger  Logger
}

func NewHandler(useCase AutofillUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/autofill
// Отсутствие имени или даты рождения в сообщении - нормальный ответ 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AutofillRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/autofill - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &autofillAppointment.Request{Text: req.Text})
	if err != nil {
		switch {
		case errors.Is(err, autofillAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/autofill - Invalid text: %v", err)
			handlers.RespondBadRequest(w, msgInvalidText)

		default:
			h.logger.Error("POST /appointments/autofill - Failed to autofill: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/autofill - Autofill done: name_found=%t, birthdate_found=%t, matched=%d",
		result.Name != nil, result.Birthdate != nil, len(result.MatchedClients))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
