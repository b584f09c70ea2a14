package import_sheetdb

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	importSheetDB "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_sheetdb"
)

const (
	msgNotConfigured     = "адрес таблицы SheetDB не настроен"
	msgSourceUnavailable = "таблица SheetDB недоступна"
)

type Handler struct {
	useCase ImportSheetDBUseCase
	logger  Logger
}

func NewHandler(useCase ImportSheetDBUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/import/sheetdb
// Повторный запуск обновляет уже импортированные строки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &importSheetDB.Request{})
	if err != nil {
		switch {
		case errors.Is(err, importSheetDB.ErrNotConfigured):
			h.logger.Warn("POST /import/sheetdb - SheetDB is not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		case errors.Is(err, importSheetDB.ErrSourceUnavailable):
			h.logger.Warn("POST /import/sheetdb - Source unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSourceUnavailable)

		default:
			h.logger.Error("POST /import/sheetdb - Failed to import: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /import/sheetdb - Import finished: clients=%d, appointments=%d",
		result.Clients.Imported, result.Appointments.Imported)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
