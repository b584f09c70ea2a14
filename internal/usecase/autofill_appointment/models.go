package autofill_appointment

import (
	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// Request модель запроса на автозаполнение
type Request struct {
	Text string // Сообщение клиента как есть
}

// Response модель ответа автозаполнения. nil означает "не найдено", поле заполняется вручную.
type Response struct {
	Name      *string     // Имя клиента
	Birthdate *types.Date // Дата рождения
	Request   string      // Текст запроса для формы

	Male           bool // Сообщение похоже на сообщение о мужчине
	BirthdateGated bool // Поиск даты рождения был пропущен

	MatchedClients []*domain.Client // Клиенты с таким же именем
}
