package update_reading

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateReading(ctx context.Context, id uuid.UUID, req *models.UpdateReadingRequest) (*models.ReadingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
