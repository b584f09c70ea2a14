package autofill_appointment

import (
	"context"

	autofillAppointment "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/autofill_appointment"
)

type AutofillUseCase interface {
	Execute(ctx context.Context, req *autofillAppointment.Request) (*autofillAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
