package create_reading

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog/models"
)

type CatalogService interface {
	CreateReading(ctx context.Context, categoryID uuid.UUID, req *models.CreateReadingRequest) (*models.ReadingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
