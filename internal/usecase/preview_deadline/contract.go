package preview_deadline

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
)

// ReadingRepository интерфейс репозитория раскладов
type ReadingRepository interface {
	GetReading(ctx context.Context, id uuid.UUID) (*domain.Reading, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
