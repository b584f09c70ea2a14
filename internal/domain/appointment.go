package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// Appointment represents a client's request for a reading
type Appointment struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	RequestDate time.Time
	Request     string
	CategoryID  uuid.UUID
	ReadingID   uuid.UUID
	Deadline    time.Time
	Completed   bool

	// Denormalized data for history
	ClientName      string
	ClientPhone     string
	ClientMessenger Messenger
	ReadingName     string
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyClient копирует данные клиента в запись
func (a *Appointment) ApplyClient(c *Client) {
	a.ClientID = c.ID
	a.ClientName = c.Name
	a.ClientPhone = c.Phone
	a.ClientMessenger = c.Messenger
}

// ApplyReading копирует данные расклада в запись
func (a *Appointment) ApplyReading(r *Reading) {
	a.ReadingID = r.ID
	a.CategoryID = r.CategoryID
	a.ReadingName = r.Name
	a.Price = r.Price
}

// IsOverdue returns true if the appointment is not completed and its deadline has passed
func (a *Appointment) IsOverdue(now time.Time) bool {
	return !a.Completed && now.After(a.Deadline)
}

// AppointmentFilter фильтр списка записей
type AppointmentFilter struct {
	Date      *types.Date // День даты запроса
	ClientID  *uuid.UUID
	ReadingID *uuid.UUID
	Completed *bool
	From      *time.Time // Дата запроса >= From
	To        *time.Time // Дата запроса < To
}

// ClientSnapshot денормализованные поля клиента в записях
type ClientSnapshot struct {
	Name      string
	Phone     string
	Messenger Messenger
}

// ReadingSnapshot денормализованные поля расклада в записях
type ReadingSnapshot struct {
	Name  string
	Price float64
}
