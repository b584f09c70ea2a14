package import_sheetdb

import (
	importSheetDB "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_sheetdb"
)

// StatsResponse статистика по одному листу
type StatsResponse struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Invalid  int `json:"invalid"`
}

// ImportSheetDBResponse HTTP ответ со статистикой импорта
type ImportSheetDBResponse struct {
	Categories   StatsResponse `json:"categories"`
	Readings     StatsResponse `json:"readings"`
	Clients      StatsResponse `json:"clients"`
	Appointments StatsResponse `json:"appointments"`
}

func fromStats(s importSheetDB.Stats) StatsResponse {
	return StatsResponse{
		Total:    s.Total,
		Imported: s.Imported,
		Skipped:  s.Skipped,
		Invalid:  s.Invalid,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *importSheetDB.Response) *ImportSheetDBResponse {
	return &ImportSheetDBResponse{
		Categories:   fromStats(resp.Categories),
		Readings:     fromStats(resp.Readings),
		Clients:      fromStats(resp.Clients),
		Appointments: fromStats(resp.Appointments),
	}
}
