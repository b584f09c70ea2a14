package autofill_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	autofillAppointment "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/autofill_appointment"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/ptr"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

type fakeUseCase struct{}

func (fakeUseCase) Execute(_ context.Context, req *autofillAppointment.Request) (*autofillAppointment.Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, autofillAppointment.ErrInvalidInput
	}
	if !strings.Contains(req.Text, "Анна") {
		return &autofillAppointment.Response{Request: req.Text}, nil
	}
	birthdate, _ := types.NewDate(1990, 3, 25)
	return &autofillAppointment.Response{
		Name:      ptr.Ptr("Анна"),
		Birthdate: &birthdate,
		Request:   req.Text,
		MatchedClients: []*domain.Client{
			{ID: uuid.MustParse("7f1c2c4e-1d5a-4a8b-9a55-0e3f3a0b6c11"), Name: "Анна", Phone: "+79001234567", Messenger: domain.MessengerTelegram},
		},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(fakeUseCase{}, nopLogger{})

	call := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/autofill", strings.NewReader(body)))
		return w
	}

	w := call(`{"text":"Здравствуйте, меня зовут Анна, 25.03.1990"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Анна"`)
	assert.Contains(t, w.Body.String(), `"birthdate":"1990-03-25"`)
	assert.Contains(t, w.Body.String(), `"id":"7f1c2c4e-1d5a-4a8b-9a55-0e3f3a0b6c11"`)

	w = call(`{"text":"Добрый день"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":null`)
	assert.Contains(t, w.Body.String(), `"birthdate":null`)
	assert.Contains(t, w.Body.String(), `"matchedClients":[]`)

	w = call(`{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidText)

	w = call(`text`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidRequestBody)
}
