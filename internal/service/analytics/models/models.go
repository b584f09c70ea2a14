package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// SummaryRequest запрос аналитики
type SummaryRequest struct {
	Period string // month, quarter, year, all; пусто означает month
	Month  string // YYYY-MM, только для month
}

// InactiveClientResponse клиент без записей больше полугода
type InactiveClientResponse struct {
	ClientID        uuid.UUID `json:"clientId"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	LastAppointment string    `json:"lastAppointment"`
}

// SummaryResponse ответ со сводкой за период
type SummaryResponse struct {
	Period           string                   `json:"period"`
	From             *string                  `json:"from"`
	To               string                   `json:"to"`
	Revenue          float64                  `json:"revenue"`
	CompletedCount   int                      `json:"completedCount"`
	UniqueClients    int                      `json:"uniqueClients"`
	ReturningClients int                      `json:"returningClients"`
	InactiveClients  []InactiveClientResponse `json:"inactiveClients"`
}

// FromDomainSummary конвертирует domain модель в DTO
func FromDomainSummary(s *domain.Summary) *SummaryResponse {
	resp := &SummaryResponse{
		Period:           string(s.Period),
		To:               types.FormatLocalTime(s.To),
		Revenue:          s.Revenue,
		CompletedCount:   s.CompletedCount,
		UniqueClients:    s.UniqueClients,
		ReturningClients: s.ReturningClients,
		InactiveClients:  make([]InactiveClientResponse, 0, len(s.InactiveClients)),
	}
	if s.From != nil {
		from := types.FormatLocalTime(*s.From)
		resp.From = &from
	}
	for _, c := range s.InactiveClients {
		resp.InactiveClients = append(resp.InactiveClients, InactiveClientResponse{
			ClientID:        c.ClientID,
			Name:            c.Name,
			Phone:           c.Phone,
			LastAppointment: types.FormatLocalTime(c.LastAppointment),
		})
	}
	return resp
}
