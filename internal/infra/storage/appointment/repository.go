package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

var appointmentColumns = []string{
	"id",
	"client_id",
	"client_name",
	"client_phone",
	"client_messenger",
	"request_date",
	"request",
	"category_id",
	"reading_id",
	"reading_name",
	"price",
	"deadline",
	"completed",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись. Если ID не задан, генерируется новый.
// Даты пишутся в колонки без часового пояса как есть, по показаниям часов.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(appointmentColumns[:13]...).
		Values(insertValues(appointment)...).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&appointment.CreatedAt, &appointment.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// Upsert создает запись или обновляет существующую с тем же ID (импорт из старой таблицы)
func (r *Repository) Upsert(ctx context.Context, appointment *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(appointmentColumns[:13]...).
		Values(insertValues(appointment)...).
		Suffix("ON CONFLICT (id) DO UPDATE SET client_id = EXCLUDED.client_id, client_name = EXCLUDED.client_name, " +
			"client_phone = EXCLUDED.client_phone, client_messenger = EXCLUDED.client_messenger, " +
			"request_date = EXCLUDED.request_date, request = EXCLUDED.request, category_id = EXCLUDED.category_id, " +
			"reading_id = EXCLUDED.reading_id, reading_name = EXCLUDED.reading_name, price = EXCLUDED.price, " +
			"deadline = EXCLUDED.deadline, completed = EXCLUDED.completed, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func insertValues(a *domain.Appointment) []interface{} {
	return []interface{}{
		a.ID,
		a.ClientID,
		a.ClientName,
		a.ClientPhone,
		a.ClientMessenger,
		types.WallClock(a.RequestDate),
		a.Request,
		a.CategoryID,
		a.ReadingID,
		a.ReadingName,
		a.Price,
		types.WallClock(a.Deadline),
		a.Completed,
	}
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List получает записи по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("request_date DESC")

	if filter.Date != nil {
		dayStart := filter.Date.Time(time.UTC)
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"request_date": dayStart}).
			Where(squirrel.Lt{"request_date": dayStart.AddDate(0, 0, 1)})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"request_date": types.WallClock(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"request_date": types.WallClock(*filter.To)})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.ReadingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reading_id": *filter.ReadingID})
	}
	if filter.Completed != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"completed": *filter.Completed})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// LastAppointmentDates возвращает дату последней записи каждого клиента, у которого есть записи
func (r *Repository) LastAppointmentDates(ctx context.Context) (map[uuid.UUID]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("client_id", "MAX(request_date)").
		From("appointments").
		GroupBy("client_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LastAppointmentDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LastAppointmentDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]time.Time)
	for rows.Next() {
		var (
			clientID uuid.UUID
			last     time.Time
		)
		if err := rows.Scan(&clientID, &last); err != nil {
			return nil, fmt.Errorf("%w: LastAppointmentDates - scan row: %v", ErrScanRow, err)
		}
		result[clientID] = last
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LastAppointmentDates - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update сохраняет все поля записи
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		SetMap(map[string]interface{}{
			"client_id":        appointment.ClientID,
			"client_name":      appointment.ClientName,
			"client_phone":     appointment.ClientPhone,
			"client_messenger": appointment.ClientMessenger,
			"request_date":     types.WallClock(appointment.RequestDate),
			"request":          appointment.Request,
			"category_id":      appointment.CategoryID,
			"reading_id":       appointment.ReadingID,
			"reading_name":     appointment.ReadingName,
			"price":            appointment.Price,
			"deadline":         types.WallClock(appointment.Deadline),
			"completed":        appointment.Completed,
			"updated_at":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": appointment.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// MarkCompleted отмечает запись выполненной
func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("completed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// UpdateClientSnapshot обновляет данные клиента во всех его записях
func (r *Repository) UpdateClientSnapshot(ctx context.Context, clientID uuid.UUID, snapshot domain.ClientSnapshot) (int64, error) {
	return r.exec(ctx, "UpdateClientSnapshot", psqlbuilder.Update("appointments").
		Set("client_name", snapshot.Name).
		Set("client_phone", snapshot.Phone).
		Set("client_messenger", snapshot.Messenger).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"client_id": clientID}))
}

// UpdateReadingSnapshot обновляет название и цену расклада во всех записях на него
func (r *Repository) UpdateReadingSnapshot(ctx context.Context, readingID uuid.UUID, snapshot domain.ReadingSnapshot) (int64, error) {
	return r.exec(ctx, "UpdateReadingSnapshot", psqlbuilder.Update("appointments").
		Set("reading_name", snapshot.Name).
		Set("price", snapshot.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reading_id": readingID}))
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.exec(ctx, "Delete", psqlbuilder.Delete("appointments").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// DeleteByClient удаляет все записи клиента
func (r *Repository) DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	return r.exec(ctx, "DeleteByClient", psqlbuilder.Delete("appointments").Where(squirrel.Eq{"client_id": clientID}))
}

// DeleteByReading удаляет все записи на расклад
func (r *Repository) DeleteByReading(ctx context.Context, readingID uuid.UUID) (int64, error) {
	return r.exec(ctx, "DeleteByReading", psqlbuilder.Delete("appointments").Where(squirrel.Eq{"reading_id": readingID}))
}

// DeleteByCategory удаляет все записи на расклады категории
func (r *Repository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.exec(ctx, "DeleteByCategory", psqlbuilder.Delete("appointments").Where(squirrel.Eq{"category_id": categoryID}))
}

func (r *Repository) exec(ctx context.Context, op string, builder squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment

	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.ClientName,
		&a.ClientPhone,
		&a.ClientMessenger,
		&a.RequestDate,
		&a.Request,
		&a.CategoryID,
		&a.ReadingID,
		&a.ReadingName,
		&a.Price,
		&a.Deadline,
		&a.Completed,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.RequestDate = types.WallClock(a.RequestDate)
	a.Deadline = types.WallClock(a.Deadline)

	return &a, nil
}
