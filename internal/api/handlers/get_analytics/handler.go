package get_analytics

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/analytics"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/analytics/models"
)

const (
	msgInvalidPeriod = "некорректный период: month, quarter, year или all; месяц в формате YYYY-MM"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics
// Query params: period (month|quarter|year|all), month (YYYY-MM, для period=month)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SummaryRequest{
		Period: r.URL.Query().Get("period"),
		Month:  r.URL.Query().Get("month"),
	}

	summary, err := h.service.Summary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidPeriod):
			h.logger.Warn("GET /analytics - Invalid period: period=%q, month=%q", req.Period, req.Month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /analytics - Failed to build summary: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics - Summary built: period=%s, completed=%d", summary.Period, summary.CompletedCount)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
