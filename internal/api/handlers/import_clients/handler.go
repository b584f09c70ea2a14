package import_clients

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	importClients "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_clients"
)

// MaxFileSize ограничение размера загружаемого CSV
const MaxFileSize = 5 << 20

const (
	msgMissingFile = "файл не передан, ожидается поле file или тело text/csv"
	msgInvalidFile = "не удалось разобрать CSV файл"
)

type Handler struct {
	useCase ImportClientsUseCase
	logger  Logger
}

func NewHandler(useCase ImportClientsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/import
// Принимает multipart/form-data с полем file или CSV в теле запроса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize)

	file, closeFn, err := h.openFile(r)
	if err != nil {
		h.logger.Warn("POST /clients/import - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer closeFn()

	result, err := h.useCase.Execute(r.Context(), &importClients.Request{File: file})
	if err != nil {
		switch {
		case errors.Is(err, importClients.ErrInvalidFile):
			h.logger.Warn("POST /clients/import - Invalid file: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFile)

		default:
			h.logger.Error("POST /clients/import - Failed to import clients: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/import - Import finished: total=%d, imported=%d, skipped=%d, invalid=%d",
		result.Total, result.Imported, result.Skipped, result.Invalid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) openFile(r *http.Request) (io.Reader, func(), error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, nil, err
		}
		return file, func() { _ = file.Close() }, nil
	}
	if r.Body == nil || r.ContentLength == 0 {
		return nil, nil, errors.New("empty body")
	}
	return r.Body, func() {}, nil
}
