package import_clients

import (
	"context"

	importClients "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_clients"
)

type ImportClientsUseCase interface {
	Execute(ctx context.Context, req *importClients.Request) (*importClients.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
