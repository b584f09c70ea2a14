package sheetdb

import "errors"

var (
	// ErrNotConfigured возвращается, когда адрес таблицы не задан
	ErrNotConfigured = errors.New("sheetdb client: url is not configured")

	// ErrSheetNotFound возвращается, когда листа нет в таблице
	ErrSheetNotFound = errors.New("sheetdb client: sheet not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sheetdb client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("sheetdb client: invalid response")
)
