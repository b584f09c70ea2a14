package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
)

// CatalogRepository интерфейс репозитория категорий и раскладов
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateReading(ctx context.Context, reading *domain.Reading) (*domain.Reading, error)
	GetReading(ctx context.Context, id uuid.UUID) (*domain.Reading, error)
	UpdateReading(ctx context.Context, reading *domain.Reading) (*domain.Reading, error)
	DeleteReading(ctx context.Context, id uuid.UUID) error
	DeleteReadingsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// AppointmentRepository интерфейс репозитория записей (денормализованные данные расклада и каскады)
type AppointmentRepository interface {
	UpdateReadingSnapshot(ctx context.Context, readingID uuid.UUID, snapshot domain.ReadingSnapshot) (int64, error)
	DeleteByReading(ctx context.Context, readingID uuid.UUID) (int64, error)
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
