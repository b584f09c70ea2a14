package preview_deadline

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// UseCase считает крайний срок без сохранения записи, для формы записи
type UseCase struct {
	readingRepo ReadingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(readingRepo ReadingRepository, logger Logger) *UseCase {
	return &UseCase{
		readingRepo: readingRepo,
		logger:      logger,
	}
}

// Execute возвращает срок для начала и длительности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Определяем длительность
	var duration deadline.Duration
	switch {
	case req.Duration != nil:
		duration = *req.Duration
	case req.ReadingID != nil:
		reading, err := uc.readingRepo.GetReading(ctx, *req.ReadingID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrReadingNotFound) {
				uc.logger.Warn("PreviewDeadline: reading id=%s not found", *req.ReadingID)
				return nil, ErrReadingNotFound
			}
			uc.logger.Error("PreviewDeadline: failed to get reading id=%s: %v", *req.ReadingID, err)
			return nil, fmt.Errorf("%w: failed to get reading: %v", ErrInternal, err)
		}
		duration = reading.Duration
	default:
		return nil, fmt.Errorf("%w: duration or readingId is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return nil, fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	// 2. Считаем срок
	start := types.WallClock(req.Start)
	due, err := deadline.Compute(start, duration)
	if err != nil {
		uc.logger.Warn("PreviewDeadline: invalid duration %+v: %v", duration, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	return &Response{
		Start:    start,
		Deadline: due,
		Duration: duration,
	}, nil
}
