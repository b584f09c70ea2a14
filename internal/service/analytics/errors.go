package analytics

import "errors"

var (
	// ErrInvalidPeriod возвращается при неизвестном периоде или месяце
	ErrInvalidPeriod = errors.New("invalid analytics period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
