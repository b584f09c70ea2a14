package import_clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	clientRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
	clientModels "github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
)

// UseCase use case импорта клиентов из CSV
type UseCase struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clientRepo ClientRepository, logger Logger) *UseCase {
	return &UseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Execute импортирует клиентов построчно. Клиенты с уже известным телефоном пропускаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбираем файл
	rows, err := readRows(req.File)
	if err != nil {
		uc.logger.Warn("ImportClients: failed to parse file: %v", err)
		return nil, err
	}

	resp := &Response{Total: len(rows), Errors: make([]RowError, 0)}

	// 2. Обрабатываем строки
	for _, r := range rows {
		client, reason := toClient(r.fields)
		if client == nil {
			resp.Invalid++
			resp.Errors = append(resp.Errors, RowError{Line: r.line, Reason: reason})
			continue
		}

		// 2.1. Пропускаем известные телефоны
		_, err := uc.clientRepo.GetByPhone(ctx, client.Phone)
		if err == nil {
			resp.Skipped++
			continue
		}
		if !errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Error("ImportClients: failed to check phone=%s on line %d: %v", client.Phone, r.line, err)
			return nil, fmt.Errorf("%w: check phone: %v", ErrInternal, err)
		}

		// 2.2. Создаем клиента
		if _, err := uc.clientRepo.Create(ctx, client); err != nil {
			if errors.Is(err, clientRepo.ErrPhoneAlreadyExists) {
				resp.Skipped++
				continue
			}
			uc.logger.Error("ImportClients: failed to create client on line %d: %v", r.line, err)
			return nil, fmt.Errorf("%w: create client: %v", ErrInternal, err)
		}
		resp.Imported++
	}

	uc.logger.Info("ImportClients: total=%d, imported=%d, skipped=%d, invalid=%d",
		resp.Total, resp.Imported, resp.Skipped, resp.Invalid)
	return resp, nil
}

// toClient собирает клиента из строки. Неизвестный мессенджер становится "Другое",
// нераспознанная дата рождения отбрасывается.
func toClient(fields []string) (*domain.Client, string) {
	birthdate, _ := parseBirthdate(field(fields, colBirthdate))

	req := &clientModels.CreateClientRequest{
		Name:      field(fields, colName),
		Phone:     field(fields, colPhone),
		Messenger: string(domain.ParseMessenger(field(fields, colMessenger))),
		Birthdate: birthdate,
	}
	if err := req.Normalize(); err != nil {
		return nil, err.Error()
	}
	return req.ToDomain(), ""
}
