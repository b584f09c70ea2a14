package import_sheetdb

import (
	"context"

	importSheetDB "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_sheetdb"
)

type ImportSheetDBUseCase interface {
	Execute(ctx context.Context, req *importSheetDB.Request) (*importSheetDB.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
