package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/psqlbuilder"
)

var readingColumns = []string{
	"id",
	"category_id",
	"name",
	"price",
	"duration_value",
	"duration_unit",
	"color",
	"created_at",
	"updated_at",
}

// Repository репозиторий категорий и раскладов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCategory создает категорию. Если ID не задан, генерируется новый.
func (r *Repository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("categories").
		Columns("id", "name").
		Values(category.ID, category.Name).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&category.CreatedAt, &category.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - execute insert: %v", ErrExecQuery, err)
	}

	if category.Readings == nil {
		category.Readings = make([]*domain.Reading, 0)
	}

	return category, nil
}

// UpsertCategory создает категорию или переименовывает существующую с тем же ID
func (r *Repository) UpsertCategory(ctx context.Context, category *domain.Category) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("categories").
		Columns("id", "name").
		Values(category.ID, category.Name).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertCategory - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertCategory - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetCategory получает категорию без раскладов
func (r *Repository) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategory - build select query: %v", ErrBuildQuery, err)
	}

	var category domain.Category
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategory - scan category: %v", ErrScanRow, err)
	}

	category.Readings = make([]*domain.Reading, 0)
	return &category, nil
}

// ListCategories получает все категории вместе с раскладами
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	byID := make(map[uuid.UUID]*domain.Category)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan category: %v", ErrScanRow, err)
		}
		category.Readings = make([]*domain.Reading, 0)
		categories = append(categories, &category)
		byID[category.ID] = &category
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	readings, err := r.listReadings(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, reading := range readings {
		if category, ok := byID[reading.CategoryID]; ok {
			category.Readings = append(category.Readings, reading)
		}
	}

	return categories, nil
}

// UpdateCategory переименовывает категорию
func (r *Repository) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("categories").
		Set("name", category.Name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": category.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCategory - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCategory - execute update: %v", ErrExecQuery, err)
	}

	return category, nil
}

// DeleteCategory удаляет категорию
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.deleteWhere(ctx, "DeleteCategory", "categories", squirrel.Eq{"id": id}, ErrCategoryNotFound)
}

// CreateReading создает расклад. Если ID не задан, генерируется новый.
func (r *Repository) CreateReading(ctx context.Context, reading *domain.Reading) (*domain.Reading, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if reading.ID == uuid.Nil {
		reading.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("readings").
		Columns("id", "category_id", "name", "price", "duration_value", "duration_unit", "color").
		Values(
			reading.ID,
			reading.CategoryID,
			reading.Name,
			reading.Price,
			reading.Duration.Value,
			reading.Duration.Unit,
			reading.Color,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReading - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reading.CreatedAt, &reading.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateReading - execute insert: %v", ErrExecQuery, err)
	}

	return reading, nil
}

// UpsertReading создает расклад или обновляет существующий с тем же ID
func (r *Repository) UpsertReading(ctx context.Context, reading *domain.Reading) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("readings").
		Columns("id", "category_id", "name", "price", "duration_value", "duration_unit", "color").
		Values(
			reading.ID,
			reading.CategoryID,
			reading.Name,
			reading.Price,
			reading.Duration.Value,
			reading.Duration.Unit,
			reading.Color,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET category_id = EXCLUDED.category_id, name = EXCLUDED.name, " +
			"price = EXCLUDED.price, duration_value = EXCLUDED.duration_value, " +
			"duration_unit = EXCLUDED.duration_unit, color = EXCLUDED.color, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertReading - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertReading - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetReading получает расклад по ID
func (r *Repository) GetReading(ctx context.Context, id uuid.UUID) (*domain.Reading, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(readingColumns...).
		From("readings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReading - build select query: %v", ErrBuildQuery, err)
	}

	reading, err := scanReading(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetReading - scan reading: %v", ErrScanRow, err)
	}

	return reading, nil
}

// ListReadingsByCategory получает расклады категории
func (r *Repository) ListReadingsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Reading, error) {
	return r.listReadings(ctx, squirrel.Eq{"category_id": categoryID})
}

func (r *Repository) listReadings(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Reading, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(readingColumns...).
		From("readings").
		OrderBy("name ASC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listReadings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listReadings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	readings := make([]*domain.Reading, 0)
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: listReadings - scan reading: %v", ErrScanRow, err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listReadings - rows error: %v", ErrScanRow, err)
	}

	return readings, nil
}

// UpdateReading сохраняет все поля расклада
func (r *Repository) UpdateReading(ctx context.Context, reading *domain.Reading) (*domain.Reading, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("readings").
		Set("category_id", reading.CategoryID).
		Set("name", reading.Name).
		Set("price", reading.Price).
		Set("duration_value", reading.Duration.Value).
		Set("duration_unit", reading.Duration.Unit).
		Set("color", reading.Color).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reading.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateReading - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&reading.CreatedAt, &reading.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateReading - execute update: %v", ErrExecQuery, err)
	}

	return reading, nil
}

// DeleteReading удаляет расклад
func (r *Repository) DeleteReading(ctx context.Context, id uuid.UUID) error {
	return r.deleteWhere(ctx, "DeleteReading", "readings", squirrel.Eq{"id": id}, ErrReadingNotFound)
}

// DeleteReadingsByCategory удаляет все расклады категории, возвращает количество удаленных
func (r *Repository) DeleteReadingsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("readings").
		Where(squirrel.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteReadingsByCategory - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteReadingsByCategory - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteReadingsByCategory - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) deleteWhere(ctx context.Context, op, table string, where squirrel.Eq, notFound error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReading(row rowScanner) (*domain.Reading, error) {
	var (
		reading domain.Reading
		color   sql.NullString
	)

	err := row.Scan(
		&reading.ID,
		&reading.CategoryID,
		&reading.Name,
		&reading.Price,
		&reading.Duration.Value,
		&reading.Duration.Unit,
		&color,
		&reading.CreatedAt,
		&reading.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if color.Valid {
		reading.Color = &color.String
	}

	return &reading, nil
}
