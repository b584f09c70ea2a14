package autofill_appointment

import (
	clientModels "github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
	autofillAppointment "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/autofill_appointment"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// AutofillRequest HTTP запрос: сообщение клиента как есть
type AutofillRequest struct {
	Text string `json:"text"`
}

// AutofillResponse поля формы записи. null означает, что поле нужно заполнить вручную.
type AutofillResponse struct {
	Name           *string                       `json:"name"`
	Birthdate      *types.Date                   `json:"birthdate"`
	Request        string                        `json:"request"`
	Male           bool                          `json:"male"`
	BirthdateGated bool                          `json:"birthdateGated"`
	MatchedClients []clientModels.ClientResponse `json:"matchedClients"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *autofillAppointment.Response) *AutofillResponse {
	matched := make([]clientModels.ClientResponse, 0, len(resp.MatchedClients))
	for _, c := range resp.MatchedClients {
		matched = append(matched, *clientModels.FromDomainClient(c))
	}
	return &AutofillResponse{
		Name:           resp.Name,
		Birthdate:      resp.Birthdate,
		Request:        resp.Request,
		Male:           resp.Male,
		BirthdateGated: resp.BirthdateGated,
		MatchedClients: matched,
	}
}
