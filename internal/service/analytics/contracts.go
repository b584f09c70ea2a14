package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	LastAppointmentDates(ctx context.Context) (map[uuid.UUID]time.Time, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
