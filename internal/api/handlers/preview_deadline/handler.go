package preview_deadline

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	previewDeadline "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/preview_deadline"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStart       = "некорректная дата начала, ожидается YYYY-MM-DD или YYYY-MM-DDTHH:MM:SS"
	msgInvalidInput       = "укажите длительность или расклад"
	msgInvalidDuration    = "некорректная длительность: значение должно быть положительным, единица minutes, hours или days"
	msgReadingNotFound    = "расклад не найден"
)

type Handler struct {
	useCase PreviewDeadlineUseCase
	logger  Logger
}

func NewHandler(useCase PreviewDeadlineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/deadline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewDeadlineRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /deadline - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /deadline - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, previewDeadline.ErrInvalidInput):
			h.logger.Warn("POST /deadline - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, previewDeadline.ErrInvalidDuration):
			h.logger.Warn("POST /deadline - Invalid duration: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidDuration)

		case errors.Is(err, previewDeadline.ErrReadingNotFound):
			h.logger.Warn("POST /deadline - Reading not found: reading_id=%v", req.ReadingID)
			handlers.RespondNotFound(w, msgReadingNotFound)

		default:
			h.logger.Error("POST /deadline - Failed to compute deadline: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
