package autofill_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при пустом или слишком длинном сообщении
	ErrInvalidInput = errors.New("autofill_appointment: invalid input data")
)
