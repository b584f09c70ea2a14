package client

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/ptr"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock, db
}

func clientRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "birthdate", "phone", "messenger", "created_at", "updated_at"})
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := newRepo(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	birthdate, err := types.NewDate(1990, time.March, 25)
	require.NoError(t, err)

	client := &domain.Client{
		Name:      "Анна",
		Birthdate: &birthdate,
		Phone:     "+79991234567",
		Messenger: domain.MessengerTelegram,
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO clients (id,name,birthdate,phone,messenger) VALUES ($1,$2,$3,$4,$5) RETURNING created_at, updated_at")).
		WithArgs(sqlmock.AnyArg(), "Анна", "1990-03-25", "+79991234567", "Telegram").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), client)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicatePhone(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "clients_phone_key"})

	_, err := repo.Create(context.Background(), &domain.Client{Name: "Анна", Phone: "+7999"})
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Found without birthdate", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name, birthdate, phone, messenger, created_at, updated_at FROM clients WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(clientRows().AddRow(id.String(), "Мария", nil, "+7111", "WhatsApp", now, now))

		client, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, client.ID)
		assert.Equal(t, "Мария", client.Name)
		assert.Nil(t, client.Birthdate)
		assert.Equal(t, domain.MessengerWhatsApp, client.Messenger)
	})

	t.Run("Found with birthdate", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = \\$1").
			WillReturnRows(clientRows().AddRow(id.String(), "Мария", time.Date(1985, 7, 2, 0, 0, 0, 0, time.UTC), "+7111", "Другое", now, now))

		client, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, client.Birthdate)
		assert.Equal(t, "1985-07-02", client.Birthdate.String())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = \\$1").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("Driver error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = \\$1").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrScanRow)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Search(t *testing.T) {
	repo, mock, _ := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, birthdate, phone, messenger, created_at, updated_at FROM clients WHERE (name ILIKE $1 OR phone LIKE $2) ORDER BY name ASC")).
		WithArgs("%ан\\_на%", "%ан\\_на%").
		WillReturnRows(clientRows().
			AddRow(uuid.NewString(), "Анна", nil, "+7111", "Telegram", now, now).
			AddRow(uuid.NewString(), "Жанна", nil, "+7222", "WhatsApp", now, now))

	clients, err := repo.List(context.Background(), domain.ClientFilter{Search: ptr.Ptr(" ан_на ")})
	require.NoError(t, err)
	assert.Len(t, clients, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE clients SET name = $1, birthdate = $2, phone = $3, messenger = $4, updated_at = NOW() WHERE id = $5 RETURNING created_at, updated_at")).
		WithArgs("Анна Петрова", nil, "+7333", "Telegram", id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	client, err := repo.Update(context.Background(), &domain.Client{
		ID: id, Name: "Анна Петрова", Phone: "+7333", Messenger: domain.MessengerTelegram,
	})
	require.NoError(t, err)
	assert.Equal(t, now, client.UpdatedAt)

	mock.ExpectQuery("UPDATE clients").WillReturnError(sql.ErrNoRows)
	_, err = repo.Update(context.Background(), &domain.Client{ID: id})
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clients WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec("DELETE FROM clients").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrClientNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UsesTransactionFromContext(t *testing.T) {
	repo, mock, db := newRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM clients").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), dbmetrics.NewSqlTxWrapper(tx))

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO clients (id,name,birthdate,phone,messenger) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (id) DO UPDATE")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &domain.Client{ID: uuid.New(), Name: "Анна", Phone: "+7", Messenger: domain.MessengerOther})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
