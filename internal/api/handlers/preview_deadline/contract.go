package preview_deadline

import (
	"context"

	previewDeadline "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/preview_deadline"
)

type PreviewDeadlineUseCase interface {
	Execute(ctx context.Context, req *previewDeadline.Request) (*previewDeadline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
