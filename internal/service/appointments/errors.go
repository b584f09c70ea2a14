package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrClientNotFound возвращается, когда клиент записи не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrReadingNotFound возвращается, когда расклад записи не найден
	ErrReadingNotFound = errors.New("reading not found")

	// ErrInvalidDuration возвращается, когда у расклада некорректная длительность и срок нельзя посчитать
	ErrInvalidDuration = errors.New("invalid reading duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
