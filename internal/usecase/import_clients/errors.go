package import_clients

import "errors"

var (
	// ErrInvalidFile возвращается, когда файл нельзя разобрать как CSV
	ErrInvalidFile = errors.New("import_clients: invalid csv file")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_clients: internal error")
)
