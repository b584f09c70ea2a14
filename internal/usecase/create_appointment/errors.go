package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент по ID не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrReadingNotFound возвращается, когда расклад не найден
	ErrReadingNotFound = errors.New("create_appointment: reading not found")

	// ErrInvalidDuration возвращается, когда у расклада некорректная длительность
	ErrInvalidDuration = errors.New("create_appointment: invalid reading duration")

	// ErrPhoneConflict возвращается, когда клиент с этим телефоном появился одновременно с созданием
	ErrPhoneConflict = errors.New("create_appointment: phone is taken by a concurrent request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
