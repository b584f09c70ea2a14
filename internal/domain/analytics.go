package domain

import (
	"time"

	"github.com/google/uuid"
)

// Period период аналитики
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// IsValid проверяет, что период из известного списка
func (p Period) IsValid() bool {
	switch p {
	case PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// Summary сводка по выполненным записям за период
type Summary struct {
	Period           Period
	From             *time.Time // nil для всего времени
	To               time.Time
	Revenue          float64
	CompletedCount   int
	UniqueClients    int
	ReturningClients int // Клиенты с более чем одной выполненной записью за период
	InactiveClients  []InactiveClient
}

// InactiveClient клиент, последняя запись которого старше InactiveAfterMonths
type InactiveClient struct {
	ClientID        uuid.UUID
	Name            string
	Phone           string
	LastAppointment time.Time
}

// CalendarMonth месячная сетка календаря
type CalendarMonth struct {
	Year         int
	Month        time.Month
	LeadingBlank int // Пустые клетки перед первым числом, неделя с понедельника
	Days         []CalendarDay
}

// CalendarDay день сетки с записями по дате запроса
type CalendarDay struct {
	Date         time.Time
	Appointments []*Appointment
}
