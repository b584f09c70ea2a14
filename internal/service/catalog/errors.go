package catalog

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("category not found")

	// ErrReadingNotFound возвращается, когда расклад не найден
	ErrReadingNotFound = errors.New("reading not found")

	// ErrInvalidDuration возвращается при некорректной длительности расклада
	ErrInvalidDuration = errors.New("invalid reading duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
