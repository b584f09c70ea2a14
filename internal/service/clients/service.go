package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	clientRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает клиента. Телефон должен быть уникальным.
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	if err := req.Normalize(); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Create: creating client phone=%s", req.Phone)

	client, err := s.clientRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, clientRepo.ErrPhoneAlreadyExists) {
			s.logger.Warn("Create: phone=%s already exists", req.Phone)
			return nil, ErrPhoneAlreadyExists
		}
		s.logger.Error("Create: repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", client.ID)
	return models.FromDomainClient(client), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate("GetByID", id.String(), err)
	}

	return models.FromDomainClient(client), nil
}

// GetByPhone получает клиента по телефону
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.ClientResponse, error) {
	phone = models.NormalizePhone(phone)

	client, err := s.clientRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, s.translate("GetByPhone", phone, err)
	}

	return models.FromDomainClient(client), nil
}

// List получает клиентов, опционально с поиском по имени или телефону
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Update частично обновляет клиента.
// Имя, телефон и мессенджер копируются во все записи клиента в той же транзакции.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%s", id)

	var updated *domain.Client
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		client, err := s.clientRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		snapshotChanged, err := req.Apply(client)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		updated, err = s.clientRepo.Update(txCtx, client)
		if err != nil {
			return err
		}

		if !snapshotChanged {
			return nil
		}

		n, err := s.appointmentRepo.UpdateClientSnapshot(txCtx, id, domain.ClientSnapshot{
			Name:      updated.Name,
			Phone:     updated.Phone,
			Messenger: updated.Messenger,
		})
		if err != nil {
			return err
		}
		s.logger.Info("Update: propagated client id=%s to %d appointments", id, n)
		return nil
	})
	if err != nil {
		return nil, s.translate("Update", id.String(), err)
	}

	s.logger.Info("Update: successfully updated client id=%s", id)
	return models.FromDomainClient(updated), nil
}

// Delete удаляет клиента вместе с его записями
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting client id=%s", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := s.appointmentRepo.DeleteByClient(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.clientRepo.Delete(txCtx, id); err != nil {
			return err
		}
		s.logger.Info("Delete: removed %d appointments of client id=%s", n, id)
		return nil
	})
	if err != nil {
		return s.translate("Delete", id.String(), err)
	}

	s.logger.Info("Delete: successfully deleted client id=%s", id)
	return nil
}

// translate переводит ошибки репозитория в ошибки сервиса
func (s *Service) translate(op, key string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: invalid input for client %s: %v", op, key, err)
		return err
	case errors.Is(err, clientRepo.ErrClientNotFound):
		s.logger.Warn("%s: client %s not found", op, key)
		return ErrClientNotFound
	case errors.Is(err, clientRepo.ErrPhoneAlreadyExists):
		s.logger.Warn("%s: phone already exists for client %s", op, key)
		return ErrPhoneAlreadyExists
	default:
		s.logger.Error("%s: repository error for client %s: %v", op, key, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
