package get_appointments

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments/models"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// ToServiceRequest собирает фильтр из query параметров, пустые значения пропускаются
func ToServiceRequest(dateStr, clientIDStr, readingIDStr, completedStr string) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if dateStr != "" {
		date, err := types.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		req.Date = &date
	}

	if clientIDStr != "" {
		id, err := uuid.Parse(clientIDStr)
		if err != nil {
			return nil, fmt.Errorf("clientId: %w", err)
		}
		req.ClientID = &id
	}

	if readingIDStr != "" {
		id, err := uuid.Parse(readingIDStr)
		if err != nil {
			return nil, fmt.Errorf("readingId: %w", err)
		}
		req.ReadingID = &id
	}

	if completedStr != "" {
		completed, err := strconv.ParseBool(completedStr)
		if err != nil {
			return nil, fmt.Errorf("completed: %w", err)
		}
		req.Completed = &completed
	}

	return req, nil
}
