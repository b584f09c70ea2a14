package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/analytics/models"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/ptr"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// Service сервис аналитики по выполненным записям
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
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

// Summary считает выручку и активность клиентов за период
func (s *Service) Summary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	now := types.WallClock(s.timeProvider.Now().In(s.location))

	// 1. Границы периода
	period := domain.Period(req.Period)
	if period == "" {
		period = domain.PeriodMonth
	}
	from, to, err := PeriodRange(period, req.Month, now)
	if err != nil {
		s.logger.Warn("Summary: invalid period=%q month=%q: %v", req.Period, req.Month, err)
		return nil, err
	}

	// 2. Выполненные записи за период
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{
		Completed: ptr.Ptr(true),
		From:      from,
		To:        &to,
	})
	if err != nil {
		s.logger.Error("Summary: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: Summary - list appointments: %v", ErrInternal, err)
	}

	summary := Summarize(appointments)
	summary.Period = period
	summary.From = from
	summary.To = to

	// 3. Неактивные клиенты считаются по всем записям, независимо от периода
	lastDates, err := s.appointmentRepo.LastAppointmentDates(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to get last appointment dates: %v", err)
		return nil, fmt.Errorf("%w: Summary - last appointment dates: %v", ErrInternal, err)
	}

	clients, err := s.clientRepo.List(ctx, domain.ClientFilter{})
	if err != nil {
		s.logger.Error("Summary: failed to list clients: %v", err)
		return nil, fmt.Errorf("%w: Summary - list clients: %v", ErrInternal, err)
	}

	summary.InactiveClients = InactiveClients(clients, lastDates, now)

	s.logger.Info("Summary: period=%s, completed=%d, revenue=%.2f, inactive=%d",
		period, summary.CompletedCount, summary.Revenue, len(summary.InactiveClients))
	return models.FromDomainSummary(summary), nil
}

// PeriodRange возвращает границы периода [from, to). from == nil означает все время.
// month (YYYY-MM) учитывается только для PeriodMonth, пустой month означает текущий месяц.
func PeriodRange(period domain.Period, month string, now time.Time) (*time.Time, time.Time, error) {
	switch period {
	case domain.PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if month != "" {
			parsed, err := time.ParseInLocation(domain.MonthFormat, month, now.Location())
			if err != nil {
				return nil, time.Time{}, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidPeriod)
			}
			start = parsed
		}
		return &start, start.AddDate(0, 1, 0), nil
	case domain.PeriodQuarter:
		quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, now.Location())
		return &start, now, nil
	case domain.PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &start, now, nil
	case domain.PeriodAll:
		return nil, now, nil
	default:
		return nil, time.Time{}, fmt.Errorf("%w: unknown period %q", ErrInvalidPeriod, period)
	}
}

// Summarize считает выручку, число записей, уникальных и повторных клиентов
func Summarize(appointments []*domain.Appointment) *domain.Summary {
	summary := &domain.Summary{}
	perClient := make(map[uuid.UUID]int)

	for _, a := range appointments {
		if !a.Completed {
			continue
		}
		summary.Revenue += a.Price
		summary.CompletedCount++
		perClient[a.ClientID]++
	}

	summary.UniqueClients = len(perClient)
	for _, count := range perClient {
		if count > 1 {
			summary.ReturningClients++
		}
	}

	return summary
}

// InactiveClients возвращает клиентов, чья последняя запись старше domain.InactiveAfterMonths.
// Клиенты без записей не попадают в список. Сначала самые давние.
func InactiveClients(clients []*domain.Client, lastDates map[uuid.UUID]time.Time, now time.Time) []domain.InactiveClient {
	cutoff := now.AddDate(0, -domain.InactiveAfterMonths, 0)

	result := make([]domain.InactiveClient, 0)
	for _, c := range clients {
		last, ok := lastDates[c.ID]
		if !ok || !last.Before(cutoff) {
			continue
		}
		result = append(result, domain.InactiveClient{
			ClientID:        c.ID,
			Name:            c.Name,
			Phone:           c.Phone,
			LastAppointment: last,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].LastAppointment.Before(result[j].LastAppointment)
	})

	return result
}
