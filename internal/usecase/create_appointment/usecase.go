package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
	clientModels "github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	readingRepo     ReadingRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	readingRepo ReadingRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		readingRepo:     readingRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Поиск или создание клиента и сама запись выполняются в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: reading=%s, date=%s", req.ReadingID, types.FormatLocalTime(req.RequestDate))

	// 1. Валидация входных данных
	clientReq, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе календаря
	now := uc.timeProvider.Now().In(uc.location)
	requestDate := req.RequestDate
	if requestDate.IsZero() {
		requestDate = now.Truncate(time.Second)
	}
	requestDate = types.InLocation(types.WallClock(requestDate), uc.location)

	// 3. Получаем расклад
	reading, err := uc.readingRepo.GetReading(ctx, req.ReadingID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrReadingNotFound) {
			uc.logger.Warn("CreateAppointment: reading id=%s not found", req.ReadingID)
			return nil, ErrReadingNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get reading id=%s: %v", req.ReadingID, err)
		return nil, fmt.Errorf("%w: failed to get reading: %v", ErrInternal, err)
	}

	// 4. Считаем срок, если он не задан вручную
	var due time.Time
	if req.Deadline != nil {
		due = *req.Deadline
		uc.logger.Info("CreateAppointment: using manual deadline=%s", types.FormatLocalTime(due))
	} else {
		due, err = deadline.Compute(requestDate, reading.Duration)
		if err != nil {
			uc.logger.Warn("CreateAppointment: reading id=%s has invalid duration: %v", reading.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
	}

	var (
		result        *domain.Appointment
		clientCreated bool
	)

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Находим или создаем клиента
		client, created, err := uc.resolveClient(txCtx, req, clientReq)
		if err != nil {
			return err
		}
		clientCreated = created

		// 5.2. Создаем запись с денормализацией данных
		appointment := &domain.Appointment{
			RequestDate: types.WallClock(requestDate),
			Request:     req.Request,
			Deadline:    types.WallClock(due),
		}
		appointment.ApplyClient(client)
		appointment.ApplyReading(reading)

		result, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: appointment id=%s created for client id=%s (new=%t), deadline=%s",
		result.ID, result.ClientID, clientCreated, types.FormatLocalTime(result.Deadline))

	return &Response{
		Appointment:   result,
		ClientCreated: clientCreated,
		Now:           types.WallClock(now),
	}, nil
}

// resolveClient возвращает клиента по ID, по телефону или создает нового
func (uc *UseCase) resolveClient(ctx context.Context, req *Request, clientReq *clientModels.CreateClientRequest) (*domain.Client, bool, error) {
	if req.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%s not found", *req.ClientID)
				return nil, false, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", *req.ClientID, err)
			return nil, false, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		return client, false, nil
	}

	newClient := clientReq.ToDomain()

	existing, err := uc.clientRepo.GetByPhone(ctx, newClient.Phone)
	switch {
	case err == nil:
		uc.logger.Info("CreateAppointment: reusing client id=%s found by phone=%s", existing.ID, newClient.Phone)
		return existing, false, nil
	case !errors.Is(err, clientRepo.ErrClientNotFound):
		uc.logger.Error("CreateAppointment: failed to get client by phone=%s: %v", newClient.Phone, err)
		return nil, false, fmt.Errorf("%w: failed to get client by phone: %v", ErrInternal, err)
	}

	created, err := uc.clientRepo.Create(ctx, newClient)
	if err != nil {
		if errors.Is(err, clientRepo.ErrPhoneAlreadyExists) {
			uc.logger.Warn("CreateAppointment: phone=%s taken concurrently", newClient.Phone)
			return nil, false, ErrPhoneConflict
		}
		uc.logger.Error("CreateAppointment: failed to create client phone=%s: %v", newClient.Phone, err)
		return nil, false, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created client id=%s", created.ID)
	return created, true, nil
}
