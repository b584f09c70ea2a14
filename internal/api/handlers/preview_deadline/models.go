package preview_deadline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	previewDeadline "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/preview_deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// PreviewDeadlineRequest HTTP запрос: начало и длительность или расклад
type PreviewDeadlineRequest struct {
	Start     string             `json:"start"` // "2006-01-02T15:04:05"
	Duration  *deadline.Duration `json:"duration,omitempty"`
	ReadingID *uuid.UUID         `json:"readingId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewDeadlineRequest) ToUseCaseRequest() (*previewDeadline.Request, error) {
	start, err := types.ParseLocalTime(r.Start, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	return &previewDeadline.Request{
		Start:     start,
		Duration:  r.Duration,
		ReadingID: r.ReadingID,
	}, nil
}

// PreviewDeadlineResponse HTTP ответ с рассчитанным сроком
type PreviewDeadlineResponse struct {
	Start         string            `json:"start"`
	Deadline      string            `json:"deadline"`
	Duration      deadline.Duration `json:"duration"`
	DurationLabel string            `json:"durationLabel"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *previewDeadline.Response) *PreviewDeadlineResponse {
	return &PreviewDeadlineResponse{
		Start:         types.FormatLocalTime(resp.Start),
		Deadline:      types.FormatLocalTime(resp.Deadline),
		Duration:      resp.Duration,
		DurationLabel: resp.Duration.Label(),
	}
}
