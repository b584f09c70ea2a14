package get_analytics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReadingsCRM/internal/service/analytics"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/analytics/models"
)

type fakeService struct {
	got *models.SummaryRequest
}

func (f *fakeService) Summary(_ context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	f.got = req
	switch req.Period {
	case "", "month", "quarter", "year", "all":
		return &models.SummaryResponse{Period: req.Period, Revenue: 4500, CompletedCount: 3}, nil
	case "boom":
		return nil, analytics.ErrInternal
	default:
		return nil, fmt.Errorf("%w: unknown period %q", analytics.ErrInvalidPeriod, req.Period)
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/analytics?period=month&month=2025-09", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-09", svc.got.Month)
	assert.Contains(t, w.Body.String(), `"revenue":4500`)

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/analytics?period=week", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidPeriod)

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/analytics?period=boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
