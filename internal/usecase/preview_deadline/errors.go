package preview_deadline

import "errors"

var (
	// ErrReadingNotFound возвращается, когда расклад не найден
	ErrReadingNotFound = errors.New("preview_deadline: reading not found")

	// ErrInvalidDuration возвращается при некорректной длительности
	ErrInvalidDuration = errors.New("preview_deadline: invalid duration")

	// ErrInvalidInput возвращается, когда не задана ни длительность, ни расклад
	ErrInvalidInput = errors.New("preview_deadline: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_deadline: internal error")
)
