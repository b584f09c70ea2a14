package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments/models"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	readingRepo     ReadingRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей.
// location задает часовой пояс, в котором вводятся даты и считается просрочка.
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	readingRepo ReadingRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
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
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// now возвращает текущие показания часов в часовом поясе календаря
func (s *Service) now() time.Time {
	return types.WallClock(s.timeProvider.Now().In(s.location))
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate("GetByID", id.String(), err)
	}

	return models.FromDomainAppointment(appointment, s.now()), nil
}

// List получает записи по фильтру, сначала новые
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return &models.AppointmentListResponse{
		Appointments: models.FromDomainAppointmentList(appointments, s.now()),
	}, nil
}

// Update частично обновляет запись.
// Срок пересчитывается, если поменялись расклад или дата запроса и ручной срок не передан.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%s", id)

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем запись
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		// 2. Клиент
		if req.ClientID != nil && *req.ClientID != appointment.ClientID {
			client, err := s.clientRepo.GetByID(txCtx, *req.ClientID)
			if err != nil {
				return err
			}
			appointment.ApplyClient(client)
		}

		recompute := false

		// 3. Дата запроса
		if req.RequestDate != nil {
			requestDate, err := models.ParseTime("requestDate", *req.RequestDate, s.location)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			recompute = recompute || !types.WallClock(requestDate).Equal(appointment.RequestDate)
			appointment.RequestDate = types.WallClock(requestDate)
		}

		// 4. Расклад
		var reading *domain.Reading
		if req.ReadingID != nil && *req.ReadingID != appointment.ReadingID {
			reading, err = s.readingRepo.GetReading(txCtx, *req.ReadingID)
			if err != nil {
				return err
			}
			appointment.ApplyReading(reading)
			recompute = true
		}

		// 5. Текст запроса
		if req.Request != nil {
			text, err := models.NormalizeRequestText(*req.Request)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			appointment.Request = text
		}

		// 6. Срок: ручной или пересчитанный
		switch {
		case req.Deadline != nil:
			manual, err := models.ParseTime("deadline", *req.Deadline, s.location)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			appointment.Deadline = types.WallClock(manual)
		case recompute:
			if reading == nil {
				reading, err = s.readingRepo.GetReading(txCtx, appointment.ReadingID)
				if err != nil {
					return err
				}
			}
			due, err := deadline.Compute(types.InLocation(appointment.RequestDate, s.location), reading.Duration)
			if err != nil {
				return err
			}
			appointment.Deadline = types.WallClock(due)
			s.logger.Info("Update: recomputed deadline=%s for appointment id=%s",
				types.FormatLocalTime(appointment.Deadline), id)
		}

		// 7. Статус
		if req.Completed != nil {
			appointment.Completed = *req.Completed
		}

		updated, err = s.appointmentRepo.Update(txCtx, appointment)
		return err
	})
	if err != nil {
		return nil, s.translate("Update", id.String(), err)
	}

	s.logger.Info("Update: successfully updated appointment id=%s", id)
	return models.FromDomainAppointment(updated, s.now()), nil
}

// MarkCompleted отмечает запись выполненной
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	if err := s.appointmentRepo.MarkCompleted(ctx, id); err != nil {
		return nil, s.translate("MarkCompleted", id.String(), err)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate("MarkCompleted", id.String(), err)
	}

	s.logger.Info("MarkCompleted: appointment id=%s completed", id)
	return models.FromDomainAppointment(appointment, s.now()), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return s.translate("Delete", id.String(), err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// Calendar возвращает сетку месяца (YYYY-MM) с записями по дате запроса.
// Пустой month означает текущий месяц.
func (s *Service) Calendar(ctx context.Context, month string) (*models.CalendarResponse, error) {
	now := s.now()

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if month != "" {
		parsed, err := time.Parse(domain.MonthFormat, month)
		if err != nil {
			s.logger.Warn("Calendar: invalid month=%q: %v", month, err)
			return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
		}
		first = parsed
	}
	next := first.AddDate(0, 1, 0)

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{From: &first, To: &next})
	if err != nil {
		s.logger.Error("Calendar: repository error for month=%s: %v", first.Format(domain.MonthFormat), err)
		return nil, fmt.Errorf("%w: Calendar - repository error: %v", ErrInternal, err)
	}

	grid := BuildCalendar(first.Year(), first.Month(), appointments)

	s.logger.Info("Calendar: month=%s, %d appointments", first.Format(domain.MonthFormat), len(appointments))
	return models.FromDomainCalendar(grid, now), nil
}

// BuildCalendar раскладывает записи по дням месяца. Неделя начинается с понедельника.
func BuildCalendar(year int, month time.Month, appointments []*domain.Appointment) *domain.CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := &domain.CalendarMonth{
		Year:         year,
		Month:        month,
		LeadingBlank: (int(first.Weekday()) + 6) % 7,
		Days:         make([]domain.CalendarDay, daysInMonth),
	}
	for i := range grid.Days {
		grid.Days[i] = domain.CalendarDay{
			Date:         first.AddDate(0, 0, i),
			Appointments: make([]*domain.Appointment, 0),
		}
	}

	for _, a := range appointments {
		if a.RequestDate.Year() != year || a.RequestDate.Month() != month {
			continue
		}
		day := &grid.Days[a.RequestDate.Day()-1]
		day.Appointments = append(day.Appointments, a)
	}

	return grid
}

// translate переводит ошибки репозитория в ошибки сервиса
func (s *Service) translate(op, key string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: invalid input for appointment %s: %v", op, key, err)
		return err
	case errors.Is(err, deadline.ErrInvalidDuration):
		s.logger.Warn("%s: cannot compute deadline for appointment %s: %v", op, key, err)
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		s.logger.Warn("%s: appointment %s not found", op, key)
		return ErrAppointmentNotFound
	case errors.Is(err, clientRepo.ErrClientNotFound):
		s.logger.Warn("%s: client of appointment %s not found", op, key)
		return ErrClientNotFound
	case errors.Is(err, catalogRepo.ErrReadingNotFound):
		s.logger.Warn("%s: reading of appointment %s not found", op, key)
		return ErrReadingNotFound
	default:
		s.logger.Error("%s: repository error for appointment %s: %v", op, key, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
