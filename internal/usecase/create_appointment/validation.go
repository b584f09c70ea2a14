package create_appointment

import (
	"fmt"

	"github.com/google/uuid"

	appointmentModels "github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments/models"
	clientModels "github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) (*clientModels.CreateClientRequest, error) {
	if req.ReadingID == uuid.Nil {
		return nil, fmt.Errorf("%w: readingId is required", ErrInvalidInput)
	}

	text, err := appointmentModels.NormalizeRequestText(req.Request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	req.Request = text

	// Клиент указывается либо по ID, либо данными из формы
	switch {
	case req.ClientID != nil && req.NewClient != nil:
		return nil, fmt.Errorf("%w: either clientId or client data must be set, not both", ErrInvalidInput)
	case req.ClientID != nil:
		if *req.ClientID == uuid.Nil {
			return nil, fmt.Errorf("%w: clientId must not be empty", ErrInvalidInput)
		}
		return nil, nil
	case req.NewClient != nil:
		clientReq := &clientModels.CreateClientRequest{
			Name:      req.NewClient.Name,
			Phone:     req.NewClient.Phone,
			Birthdate: req.NewClient.Birthdate,
			Messenger: req.NewClient.Messenger,
		}
		if err := clientReq.Normalize(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return clientReq, nil
	default:
		return nil, fmt.Errorf("%w: client is required", ErrInvalidInput)
	}
}
