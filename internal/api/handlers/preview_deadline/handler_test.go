package preview_deadline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	previewDeadline "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/preview_deadline"
)

type nopReadingRepo struct{}

func (nopReadingRepo) GetReading(context.Context, uuid.UUID) (*domain.Reading, error) {
	return nil, previewDeadline.ErrReadingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(previewDeadline.NewUseCase(nopReadingRepo{}, nopLogger{}), nopLogger{})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "days end at due hour",
			body:       `{"start":"2025-10-01T14:30:00","duration":{"value":3,"unit":"days"}}`,
			wantStatus: http.StatusOK,
			wantBody:   `"deadline":"2025-10-04T19:00:00"`,
		},
		{
			name:       "minutes keep time of day",
			body:       `{"start":"2025-10-01T23:50:00","duration":{"value":20,"unit":"minutes"}}`,
			wantStatus: http.StatusOK,
			wantBody:   `"deadline":"2025-10-02T00:10:00"`,
		},
		{
			name:       "label",
			body:       `{"start":"2025-10-01","duration":{"value":2,"unit":"hours"}}`,
			wantStatus: http.StatusOK,
			wantBody:   `"durationLabel":"2 часов"`,
		},
		{
			name:       "bad start",
			body:       `{"start":"вчера","duration":{"value":2,"unit":"hours"}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   msgInvalidStart,
		},
		{
			name:       "unknown unit",
			body:       `{"start":"2025-10-01","duration":{"value":1,"unit":"weeks"}}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "nothing to compute from",
			body:       `{"start":"2025-10-01"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   msgInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/deadline", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
