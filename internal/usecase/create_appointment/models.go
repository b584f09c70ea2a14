package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// NewClient данные клиента, которого нужно найти по телефону или создать
type NewClient struct {
	Name      string
	Phone     string
	Birthdate *types.Date
	Messenger string // Пустое значение означает Другое
}

// Request модель запроса на создание записи
type Request struct {
	ClientID    *uuid.UUID // Существующий клиент
	NewClient   *NewClient // Или данные клиента из формы
	RequestDate time.Time  // Дата запроса в часовом поясе календаря; нулевая означает "сейчас"
	Request     string     // Текст запроса клиента
	ReadingID   uuid.UUID  // ID расклада
	Deadline    *time.Time // Ручной срок (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment   *domain.Appointment // Созданная запись
	ClientCreated bool                // Клиент создан в этом запросе
	Now           time.Time           // Текущие показания часов календаря, для расчета просрочки
}
