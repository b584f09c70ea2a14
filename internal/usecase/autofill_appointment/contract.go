package autofill_appointment

import (
	"context"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/autofill"
)

// Inferrer разбирает сообщение клиента
type Inferrer interface {
	Infer(text string) autofill.Result
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error)
}

// Metrics интерфейс учета исходов автозаполнения
type Metrics interface {
	IncAutofill(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
