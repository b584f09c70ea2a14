package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments/models"
)

type AppointmentService interface {
	Calendar(ctx context.Context, month string) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
