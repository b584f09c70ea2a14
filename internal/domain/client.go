package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// Messenger мессенджер, через который клиент связывается с практиком
type Messenger string

const (
	MessengerWhatsApp Messenger = "WhatsApp"
	MessengerTelegram Messenger = "Telegram"
	MessengerOther    Messenger = "Другое"
)

// IsValid проверяет, что мессенджер из известного списка
func (m Messenger) IsValid() bool {
	switch m {
	case MessengerWhatsApp, MessengerTelegram, MessengerOther:
		return true
	}
	return false
}

// ParseMessenger разбирает мессенджер без учета регистра, неизвестное значение становится MessengerOther
func ParseMessenger(s string) Messenger {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whatsapp", "ватсап", "вотсап":
		return MessengerWhatsApp
	case "telegram", "телеграм", "телеграмм":
		return MessengerTelegram
	default:
		return MessengerOther
	}
}

// Client represents a client of the practice
type Client struct {
	ID        uuid.UUID
	Name      string
	Birthdate *types.Date
	Phone     string // Уникален среди клиентов
	Messenger Messenger

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientFilter фильтр списка клиентов
type ClientFilter struct {
	Search *string // Подстрока имени (без учета регистра) или телефона
	Phone  *string // Точное совпадение телефона
}
