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

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name      string      `json:"name"`
	Birthdate *types.Date `json:"birthdate,omitempty"`
	Phone     string      `json:"phone"`
	Messenger string      `json:"messenger"` // WhatsApp, Telegram, Другое; пустое значение - Другое
}

// Normalize обрезает пробелы и проверяет поля
func (r *CreateClientRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = NormalizePhone(r.Phone)
	r.Messenger = strings.TrimSpace(r.Messenger)

	if err := validateName(r.Name); err != nil {
		return err
	}
	if err := validatePhone(r.Phone); err != nil {
		return err
	}
	if r.Messenger == "" {
		r.Messenger = string(domain.MessengerOther)
	}
	if !domain.Messenger(r.Messenger).IsValid() {
		return fmt.Errorf("%w: unknown messenger %q", ErrValidation, r.Messenger)
	}
	if r.Birthdate != nil && r.Birthdate.IsZero() {
		r.Birthdate = nil
	}
	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		Name:      r.Name,
		Birthdate: r.Birthdate,
		Phone:     r.Phone,
		Messenger: domain.Messenger(r.Messenger),
	}
}

// UpdateClientRequest частичное обновление клиента.
// Birthdate со значением "" очищает дату рождения.
type UpdateClientRequest struct {
	Name      *string     `json:"name,omitempty"`
	Birthdate *types.Date `json:"birthdate,omitempty"`
	Phone     *string     `json:"phone,omitempty"`
	Messenger *string     `json:"messenger,omitempty"`
}

// Apply применяет изменения к клиенту и сообщает, изменились ли поля, скопированные в записи
func (r *UpdateClientRequest) Apply(client *domain.Client) (snapshotChanged bool, err error) {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if err := validateName(name); err != nil {
			return false, err
		}
		snapshotChanged = snapshotChanged || name != client.Name
		client.Name = name
	}
	if r.Phone != nil {
		phone := NormalizePhone(*r.Phone)
		if err := validatePhone(phone); err != nil {
			return false, err
		}
		snapshotChanged = snapshotChanged || phone != client.Phone
		client.Phone = phone
	}
	if r.Messenger != nil {
		messenger := domain.Messenger(strings.TrimSpace(*r.Messenger))
		if !messenger.IsValid() {
			return false, fmt.Errorf("%w: unknown messenger %q", ErrValidation, *r.Messenger)
		}
		snapshotChanged = snapshotChanged || messenger != client.Messenger
		client.Messenger = messenger
	}
	if r.Birthdate != nil {
		if r.Birthdate.IsZero() {
			client.Birthdate = nil
		} else {
			birthdate := *r.Birthdate
			client.Birthdate = &birthdate
		}
	}
	return snapshotChanged, nil
}

// ListClientsRequest фильтр списка клиентов
type ListClientsRequest struct {
	Search *string `json:"search,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListClientsRequest) ToDomainFilter() domain.ClientFilter {
	filter := domain.ClientFilter{Search: r.Search}
	if r.Phone != nil {
		phone := NormalizePhone(*r.Phone)
		filter.Phone = &phone
	}
	return filter
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Birthdate *types.Date `json:"birthdate"` // "1990-03-25" или null
	Phone     string      `json:"phone"`
	Messenger string      `json:"messenger"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Birthdate: c.Birthdate,
		Phone:     c.Phone,
		Messenger: string(c.Messenger),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}
	for _, c := range clients {
		if clientResp := FromDomainClient(c); clientResp != nil {
			resp.Clients = append(resp.Clients, *clientResp)
		}
	}
	return resp
}

// NormalizePhone убирает пробелы, скобки и дефисы: "+7 (999) 123-45-67" -> "+79991234567"
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '(', ')', '-':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrValidation)
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrValidation)
	}
	return nil
}
