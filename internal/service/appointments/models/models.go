package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

var (
	// ErrValidation возвращается при некорректных полях запроса
	ErrValidation = errors.New("validation error")
)

// Request модели

// ListAppointmentsRequest фильтры списка записей
type ListAppointmentsRequest struct {
	Date      *types.Date
	ClientID  *uuid.UUID
	ReadingID *uuid.UUID
	Completed *bool
}

// ToDomainFilter конвертирует запрос в фильтр репозитория
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentFilter {
	return domain.AppointmentFilter{
		Date:      r.Date,
		ClientID:  r.ClientID,
		ReadingID: r.ReadingID,
		Completed: r.Completed,
	}
}

// UpdateAppointmentRequest частичное обновление записи.
// Даты принимаются как "2006-01-02" или "2006-01-02T15:04:05" без часового пояса.
type UpdateAppointmentRequest struct {
	ClientID    *uuid.UUID `json:"clientId,omitempty"`
	RequestDate *string    `json:"requestDate,omitempty"`
	Request     *string    `json:"request,omitempty"`
	ReadingID   *uuid.UUID `json:"readingId,omitempty"`
	Deadline    *string    `json:"deadline,omitempty"` // Ручной срок, отключает пересчет
	Completed   *bool      `json:"completed,omitempty"`
}

// NormalizeRequestText обрезает пробелы и проверяет длину текста запроса
func NormalizeRequestText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > domain.MaxRequestLength {
		return "", fmt.Errorf("%w: request is too long", ErrValidation)
	}
	return text, nil
}

// ParseTime разбирает дату или дату со временем в часовом поясе календаря
func ParseTime(field, value string, loc *time.Location) (time.Time, error) {
	t, err := types.ParseLocalTime(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrValidation, field, err)
	}
	return t, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
	ClientName      string    `json:"clientName"`
	ClientPhone     string    `json:"clientPhone"`
	ClientMessenger string    `json:"clientMessenger"`
	RequestDate     string    `json:"requestDate"` // 2006-01-02T15:04:05
	Request         string    `json:"request"`
	CategoryID      uuid.UUID `json:"categoryId"`
	ReadingID       uuid.UUID `json:"readingId"`
	ReadingName     string    `json:"readingName"`
	Price           float64   `json:"price"`
	Deadline        string    `json:"deadline"` // 2006-01-02T15:04:05
	Completed       bool      `json:"completed"`
	Overdue         bool      `json:"overdue"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CalendarDayResponse день календаря
type CalendarDayResponse struct {
	Date         string                `json:"date"` // 2006-01-02
	Appointments []AppointmentResponse `json:"appointments"`
}

// CalendarResponse месячная сетка календаря
type CalendarResponse struct {
	Month        string                `json:"month"` // 2006-01
	LeadingBlank int                   `json:"leadingBlank"`
	Days         []CalendarDayResponse `json:"days"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO.
// now должен быть в тех же показаниях часов, что и сроки записей.
func FromDomainAppointment(a *domain.Appointment, now time.Time) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		ClientPhone:     a.ClientPhone,
		ClientMessenger: string(a.ClientMessenger),
		RequestDate:     types.FormatLocalTime(a.RequestDate),
		Request:         a.Request,
		CategoryID:      a.CategoryID,
		ReadingID:       a.ReadingID,
		ReadingName:     a.ReadingName,
		Price:           a.Price,
		Deadline:        types.FormatLocalTime(a.Deadline),
		Completed:       a.Completed,
		Overdue:         a.IsOverdue(now),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, now time.Time) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if resp := FromDomainAppointment(a, now); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// FromDomainCalendar конвертирует сетку календаря в DTO
func FromDomainCalendar(c *domain.CalendarMonth, now time.Time) *CalendarResponse {
	resp := &CalendarResponse{
		Month:        time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).Format(domain.MonthFormat),
		LeadingBlank: c.LeadingBlank,
		Days:         make([]CalendarDayResponse, 0, len(c.Days)),
	}
	for _, day := range c.Days {
		resp.Days = append(resp.Days, CalendarDayResponse{
			Date:         day.Date.Format(domain.DateFormat),
			Appointments: FromDomainAppointmentList(day.Appointments, now),
		})
	}
	return resp
}
