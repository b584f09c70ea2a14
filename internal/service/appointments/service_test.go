package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments/models"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*domain.Appointment
	lastFilter   domain.AppointmentFilter
	listErr      error
}

func newFakeAppointmentRepo(appointments ...*domain.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*domain.Appointment)}
	for _, a := range appointments {
		r.appointments[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := r.appointments[a.ID]; !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	r.appointments[a.ID] = a
	return a, nil
}

func (r *fakeAppointmentRepo) MarkCompleted(_ context.Context, id uuid.UUID) error {
	a, ok := r.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Completed = true
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

type fakeClientRepo map[uuid.UUID]*domain.Client

func (r fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	c, ok := r[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

type fakeReadingRepo map[uuid.UUID]*domain.Reading

func (r fakeReadingRepo) GetReading(_ context.Context, id uuid.UUID) (*domain.Reading, error) {
	reading, ok := r[id]
	if !ok {
		return nil, catalogRepo.ErrReadingNotFound
	}
	return reading, nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc         *Service
	repo        *fakeAppointmentRepo
	appointment *domain.Appointment
	express     *domain.Reading
	celticCross *domain.Reading
	otherClient *domain.Client
}

// Moscow wall clock: 2025-10-15 12:00
func newFixture(t *testing.T) *fixture {
	t.Helper()

	moscow := time.FixedZone("MSK", 3*60*60)

	express := &domain.Reading{
		ID: uuid.New(), CategoryID: uuid.New(), Name: "Экспресс", Price: 500,
		Duration: deadline.Duration{Value: 30, Unit: deadline.UnitMinutes},
	}
	celticCross := &domain.Reading{
		ID: uuid.New(), CategoryID: uuid.New(), Name: "Кельтский крест", Price: 2000,
		Duration: deadline.Duration{Value: 2, Unit: deadline.UnitDays},
	}
	otherClient := &domain.Client{
		ID: uuid.New(), Name: "Ольга", Phone: "+79990000000", Messenger: domain.MessengerWhatsApp,
	}

	appointment := &domain.Appointment{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		ClientName:  "Анна",
		RequestDate: time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC),
		Request:     "Что ждет в отношениях?",
		CategoryID:  express.CategoryID,
		ReadingID:   express.ID,
		ReadingName: express.Name,
		Price:       express.Price,
		Deadline:    time.Date(2025, 10, 14, 10, 30, 0, 0, time.UTC),
	}

	repo := newFakeAppointmentRepo(appointment)
	svc := NewService(
		repo,
		fakeClientRepo{otherClient.ID: otherClient},
		fakeReadingRepo{express.ID: express, celticCross.ID: celticCross},
		fakeTx{},
		moscow,
		nopLogger{},
	).WithTimeProvider(fixedTime{now: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)})

	return &fixture{
		svc: svc, repo: repo, appointment: appointment,
		express: express, celticCross: celticCross, otherClient: otherClient,
	}
}

func TestService_GetByID_Overdue(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.GetByID(context.Background(), f.appointment.ID)
	require.NoError(t, err)
	assert.True(t, resp.Overdue)
	assert.Equal(t, "2025-10-14T10:30:00", resp.Deadline)

	_, err = f.svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name         string
		req          func(f *fixture) *models.UpdateAppointmentRequest
		wantErr      error
		wantDeadline string
		check        func(t *testing.T, f *fixture, resp *models.AppointmentResponse)
	}{
		{
			name: "Reading change recomputes deadline",
			req: func(f *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{ReadingID: &f.celticCross.ID}
			},
			wantDeadline: "2025-10-16T19:00:00",
			check: func(t *testing.T, f *fixture, resp *models.AppointmentResponse) {
				assert.Equal(t, "Кельтский крест", resp.ReadingName)
				assert.Equal(t, 2000.0, resp.Price)
				assert.Equal(t, f.celticCross.CategoryID, resp.CategoryID)
			},
		},
		{
			name: "Request date change recomputes with current reading",
			req: func(_ *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{RequestDate: ptr.Ptr("2025-10-20T23:50:00")}
			},
			wantDeadline: "2025-10-21T00:20:00",
		},
		{
			name: "Date only request date means midnight",
			req: func(_ *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{RequestDate: ptr.Ptr("2025-10-20")}
			},
			wantDeadline: "2025-10-20T00:30:00",
		},
		{
			name: "Manual deadline wins over recompute",
			req: func(f *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{
					ReadingID: &f.celticCross.ID,
					Deadline:  ptr.Ptr("2025-11-01T12:00:00"),
				}
			},
			wantDeadline: "2025-11-01T12:00:00",
		},
		{
			name: "Text and status only keep deadline",
			req: func(_ *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{Request: ptr.Ptr("  Новый вопрос "), Completed: ptr.Ptr(true)}
			},
			wantDeadline: "2025-10-14T10:30:00",
			check: func(t *testing.T, _ *fixture, resp *models.AppointmentResponse) {
				assert.Equal(t, "Новый вопрос", resp.Request)
				assert.True(t, resp.Completed)
				assert.False(t, resp.Overdue)
			},
		},
		{
			name: "Client change copies client fields",
			req: func(f *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{ClientID: &f.otherClient.ID}
			},
			wantDeadline: "2025-10-14T10:30:00",
			check: func(t *testing.T, f *fixture, resp *models.AppointmentResponse) {
				assert.Equal(t, f.otherClient.ID, resp.ClientID)
				assert.Equal(t, "Ольга", resp.ClientName)
				assert.Equal(t, "WhatsApp", resp.ClientMessenger)
			},
		},
		{
			name: "Unknown client",
			req: func(_ *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{ClientID: ptr.Ptr(uuid.New())}
			},
			wantErr: ErrClientNotFound,
		},
		{
			name: "Unknown reading",
			req: func(_ *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{ReadingID: ptr.Ptr(uuid.New())}
			},
			wantErr: ErrReadingNotFound,
		},
		{
			name: "Invalid request date",
			req: func(_ *fixture) *models.UpdateAppointmentRequest {
				return &models.UpdateAppointmentRequest{RequestDate: ptr.Ptr("вчера")}
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			resp, err := f.svc.Update(context.Background(), f.appointment.ID, tt.req(f))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeadline, resp.Deadline)
			if tt.check != nil {
				tt.check(t, f, resp)
			}
		})
	}
}

func TestService_Update_BrokenReadingDuration(t *testing.T) {
	f := newFixture(t)
	f.express.Duration = deadline.Duration{Value: 0, Unit: deadline.UnitDays}

	_, err := f.svc.Update(context.Background(), f.appointment.ID, &models.UpdateAppointmentRequest{
		RequestDate: ptr.Ptr("2025-10-20T10:00:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestService_MarkCompletedAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.MarkCompleted(ctx, f.appointment.ID)
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.False(t, resp.Overdue)

	require.NoError(t, f.svc.Delete(ctx, f.appointment.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, f.appointment.ID), ErrAppointmentNotFound)

	_, err = f.svc.MarkCompleted(ctx, f.appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_List(t *testing.T) {
	f := newFixture(t)
	clientID := uuid.New()

	resp, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		ClientID:  &clientID,
		Completed: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	assert.Equal(t, &clientID, f.repo.lastFilter.ClientID)

	f.repo.listErr = errors.New("timeout")
	_, err = f.svc.List(context.Background(), &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBuildCalendar(t *testing.T) {
	first := &domain.Appointment{ID: uuid.New(), RequestDate: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)}
	last := &domain.Appointment{ID: uuid.New(), RequestDate: time.Date(2025, 10, 31, 23, 59, 0, 0, time.UTC)}
	outside := &domain.Appointment{ID: uuid.New(), RequestDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)}

	grid := BuildCalendar(2025, time.October, []*domain.Appointment{first, last, outside})

	// 1 октября 2025 года среда
	assert.Equal(t, 2, grid.LeadingBlank)
	require.Len(t, grid.Days, 31)
	assert.Equal(t, []*domain.Appointment{first}, grid.Days[0].Appointments)
	assert.Equal(t, []*domain.Appointment{last}, grid.Days[30].Appointments)
	assert.Empty(t, grid.Days[15].Appointments)

	// 1 сентября 2025 года понедельник, в феврале 2024 года 29 дней
	assert.Equal(t, 0, BuildCalendar(2025, time.September, nil).LeadingBlank)
	assert.Len(t, BuildCalendar(2024, time.February, nil).Days, 29)
	// 1 июня 2025 года воскресенье
	assert.Equal(t, 6, BuildCalendar(2025, time.June, nil).LeadingBlank)
}

func TestService_Calendar(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Calendar(context.Background(), "2025-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-10", resp.Month)
	require.NotNil(t, f.repo.lastFilter.From)
	require.NotNil(t, f.repo.lastFilter.To)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), *f.repo.lastFilter.From)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), *f.repo.lastFilter.To)
	assert.Len(t, resp.Days[13].Appointments, 1)
	assert.Equal(t, "2025-10-14", resp.Days[13].Date)

	current, err := f.svc.Calendar(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2025-10", current.Month)

	_, err = f.svc.Calendar(context.Background(), "октябрь")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
