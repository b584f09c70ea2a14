package import_sheetdb

import "errors"

var (
	// ErrSourceUnavailable возвращается, когда таблицу не удалось получить
	ErrSourceUnavailable = errors.New("import_sheetdb: source sheet is unavailable")

	// ErrNotConfigured возвращается, когда адрес таблицы не задан
	ErrNotConfigured = errors.New("import_sheetdb: sheetdb url is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_sheetdb: internal error")
)
