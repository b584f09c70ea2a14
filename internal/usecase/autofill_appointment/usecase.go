package autofill_appointment

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/metrics"
)

// UseCase use case автозаполнения формы записи по сообщению клиента
type UseCase struct {
	inferrer   Inferrer
	clientRepo ClientRepository
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(inferrer Inferrer, clientRepo ClientRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		inferrer:   inferrer,
		clientRepo: clientRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute разбирает сообщение. Ненайденные имя или дата не считаются ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > domain.MaxRequestLength {
		return nil, fmt.Errorf("%w: text is too long", ErrInvalidInput)
	}

	// 2. Разбор сообщения
	result := uc.inferrer.Infer(text)
	resp := &Response{
		Name:           result.Name,
		Birthdate:      result.Birthdate,
		Request:        text,
		Male:           result.Male,
		BirthdateGated: result.BirthdateGated,
		MatchedClients: make([]*domain.Client, 0),
	}
	uc.observe(resp)

	// 3. Подсказка: существующие клиенты с таким именем
	if resp.Name != nil {
		resp.MatchedClients = uc.matchClients(ctx, *resp.Name)
	}

	uc.logger.Info("AutofillAppointment: name_found=%t, birthdate_found=%t, male=%t, gated=%t, matched=%d",
		resp.Name != nil, resp.Birthdate != nil, resp.Male, resp.BirthdateGated, len(resp.MatchedClients))

	return resp, nil
}

// matchClients ищет клиентов с тем же именем без учета регистра. Ошибка поиска не ломает автозаполнение.
func (uc *UseCase) matchClients(ctx context.Context, name string) []*domain.Client {
	clients, err := uc.clientRepo.List(ctx, domain.ClientFilter{Search: &name})
	if err != nil {
		uc.logger.Warn("AutofillAppointment: failed to look up clients by name: %v", err)
		return make([]*domain.Client, 0)
	}

	matched := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (uc *UseCase) observe(resp *Response) {
	if uc.metrics == nil {
		return
	}
	if resp.Name != nil {
		uc.metrics.IncAutofill(metrics.AutofillNameFound)
	}
	if resp.Birthdate != nil {
		uc.metrics.IncAutofill(metrics.AutofillBirthdateFound)
	}
	if resp.BirthdateGated {
		uc.metrics.IncAutofill(metrics.AutofillGated)
	}
}
