package preview_deadline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/ptr"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

type fakeReadingRepo struct {
	readings map[uuid.UUID]*domain.Reading
	err      error
}

func (f *fakeReadingRepo) GetReading(_ context.Context, id uuid.UUID) (*domain.Reading, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.readings[id]
	if !ok {
		return nil, catalogRepo.ErrReadingNotFound
	}
	return r, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	readingID := uuid.New()
	repo := &fakeReadingRepo{readings: map[uuid.UUID]*domain.Reading{
		readingID: {ID: readingID, Name: "Кельтский крест", Duration: deadline.Duration{Value: 3, Unit: deadline.UnitDays}},
	}}
	start := time.Date(2025, 10, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		want    string
		wantErr error
	}{
		{
			name: "explicit duration",
			req:  &Request{Start: start, Duration: &deadline.Duration{Value: 45, Unit: deadline.UnitMinutes}},
			want: "2025-10-01T15:15:00",
		},
		{
			name: "duration from reading",
			req:  &Request{Start: start, ReadingID: &readingID},
			want: "2025-10-04T19:00:00",
		},
		{
			name:    "unknown reading",
			req:     &Request{Start: start, ReadingID: ptr.Ptr(uuid.New())},
			wantErr: ErrReadingNotFound,
		},
		{
			name:    "no duration and no reading",
			req:     &Request{Start: start},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero start",
			req:     &Request{Duration: &deadline.Duration{Value: 1, Unit: deadline.UnitHours}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative duration",
			req:     &Request{Start: start, Duration: &deadline.Duration{Value: -5, Unit: deadline.UnitMinutes}},
			wantErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(repo, nopLogger{})
			resp, err := uc.Execute(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, types.FormatLocalTime(resp.Deadline))
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeReadingRepo{err: errors.New("connection reset")}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Start: time.Now(), ReadingID: ptr.Ptr(uuid.New())})
	assert.ErrorIs(t, err, ErrInternal)
}
