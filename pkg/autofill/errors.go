package autofill

import "errors"

var (
	// ErrUnknownPolicy имя политики из конфига не найдено
	ErrUnknownPolicy = errors.New("autofill: unknown birthdate policy")
)
