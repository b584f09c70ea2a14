package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	appointmentModels "github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// NewClientRequest данные нового клиента из формы записи
type NewClientRequest struct {
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Birthdate *types.Date `json:"birthdate,omitempty"`
	Messenger string      `json:"messenger,omitempty"`
}

// CreateAppointmentRequest HTTP запрос на создание записи.
// Указывается clientId существующего клиента или client с данными нового.
type CreateAppointmentRequest struct {
	ClientID    *uuid.UUID        `json:"clientId,omitempty"`
	Client      *NewClientRequest `json:"client,omitempty"`
	RequestDate string            `json:"requestDate,omitempty"` // "2006-01-02" или "2006-01-02T15:04:05", пусто - сейчас
	Request     string            `json:"request"`
	ReadingID   uuid.UUID         `json:"readingId"`
	Deadline    *string           `json:"deadline,omitempty"` // Ручной срок
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Часовой пояс календаря use case подставляет сам, здесь разбираются только показания часов.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		ClientID:  r.ClientID,
		Request:   r.Request,
		ReadingID: r.ReadingID,
	}

	if r.Client != nil {
		req.NewClient = &createAppointment.NewClient{
			Name:      r.Client.Name,
			Phone:     r.Client.Phone,
			Birthdate: r.Client.Birthdate,
			Messenger: r.Client.Messenger,
		}
	}

	if r.RequestDate != "" {
		t, err := types.ParseLocalTime(r.RequestDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("requestDate: %w", err)
		}
		req.RequestDate = t
	}

	if r.Deadline != nil && *r.Deadline != "" {
		t, err := types.ParseLocalTime(*r.Deadline, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("deadline: %w", err)
		}
		req.Deadline = &t
	}

	return req, nil
}

// CreateAppointmentResponse созданная запись и признак нового клиента
type CreateAppointmentResponse struct {
	appointmentModels.AppointmentResponse
	ClientCreated bool `json:"clientCreated"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		AppointmentResponse: *appointmentModels.FromDomainAppointment(resp.Appointment, resp.Now),
		ClientCreated:       resp.ClientCreated,
	}
}
