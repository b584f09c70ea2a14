package import_clients

import (
	importClients "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_clients"
)

// RowErrorResponse ошибка в строке файла
type RowErrorResponse struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportClientsResponse HTTP ответ со статистикой импорта
type ImportClientsResponse struct {
	Total    int                `json:"total"`
	Imported int                `json:"imported"`
	Skipped  int                `json:"skipped"`
	Invalid  int                `json:"invalid"`
	Errors   []RowErrorResponse `json:"errors"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *importClients.Response) *ImportClientsResponse {
	errs := make([]RowErrorResponse, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		errs = append(errs, RowErrorResponse{Line: e.Line, Reason: e.Reason})
	}
	return &ImportClientsResponse{
		Total:    resp.Total,
		Imported: resp.Imported,
		Skipped:  resp.Skipped,
		Invalid:  resp.Invalid,
		Errors:   errs,
	}
}
