package import_sheetdb

import (
	"context"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/internal/integrations/sheetdb"
)

// SheetClient интерфейс клиента таблицы
type SheetClient interface {
	GetClients(ctx context.Context) ([]sheetdb.ClientRow, error)
	GetCatalog(ctx context.Context) ([]sheetdb.CatalogRow, error)
	GetAppointments(ctx context.Context) ([]sheetdb.AppointmentRow, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Upsert(ctx context.Context, client *domain.Client) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	UpsertCategory(ctx context.Context, category *domain.Category) error
	UpsertReading(ctx context.Context, reading *domain.Reading) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Upsert(ctx context.Context, appointment *domain.Appointment) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
