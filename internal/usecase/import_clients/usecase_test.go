package import_clients

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	clientRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
)

type fakeClientRepo struct {
	byPhone map[string]*domain.Client
	err     error
}

func newFakeClientRepo(phones ...string) *fakeClientRepo {
	r := &fakeClientRepo{byPhone: make(map[string]*domain.Client)}
	for _, p := range phones {
		r.byPhone[p] = &domain.Client{ID: uuid.New(), Phone: p}
	}
	return r
}

func (r *fakeClientRepo) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.byPhone[phone]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if _, ok := r.byPhone[c.Phone]; ok {
		return nil, clientRepo.ErrPhoneAlreadyExists
	}
	c.ID = uuid.New()
	r.byPhone[c.Phone] = c
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		existing     []string
		want         Response
		wantLines    []int
		checkClients func(t *testing.T, repo *fakeClientRepo)
	}{
		{
			name: "Comma with header",
			file: "Имя,Телефон,Мессенджер,Дата рождения\n" +
				"Анна,+7 900 123-45-67,WhatsApp,1990-03-25\n" +
				"Елена,+79001234568,телеграм,25.03.1991\n",
			want: Response{Total: 2, Imported: 2},
			checkClients: func(t *testing.T, repo *fakeClientRepo) {
				anna := repo.byPhone["+79001234567"]
				require.NotNil(t, anna)
				assert.Equal(t, domain.MessengerWhatsApp, anna.Messenger)
				require.NotNil(t, anna.Birthdate)
				assert.Equal(t, "1990-03-25", anna.Birthdate.String())

				elena := repo.byPhone["+79001234568"]
				require.NotNil(t, elena)
				assert.Equal(t, domain.MessengerTelegram, elena.Messenger)
				require.NotNil(t, elena.Birthdate)
				assert.Equal(t, "1991-03-25", elena.Birthdate.String())
			},
		},
		{
			name:     "Semicolon without header, existing phone skipped",
			file:     "Мария;+79001234569;WhatsApp\nВиктория;+79001234570;ICQ\n",
			existing: []string{"+79001234569"},
			want:     Response{Total: 2, Imported: 1, Skipped: 1},
			checkClients: func(t *testing.T, repo *fakeClientRepo) {
				viktoria := repo.byPhone["+79001234570"]
				require.NotNil(t, viktoria)
				assert.Equal(t, domain.MessengerOther, viktoria.Messenger)
				assert.Nil(t, viktoria.Birthdate)
			},
		},
		{
			name:      "Invalid rows and duplicates inside the file",
			file:      "Ольга,+79001234571\n,+79001234572\nИрина,\n\nОльга 2,+7 (900) 123-45-71\nНина,+79001234573,Telegram,когда-то\n",
			want:      Response{Total: 5, Imported: 2, Skipped: 1, Invalid: 2},
			wantLines: []int{2, 3},
			checkClients: func(t *testing.T, repo *fakeClientRepo) {
				nina := repo.byPhone["+79001234573"]
				require.NotNil(t, nina)
				assert.Nil(t, nina.Birthdate)
			},
		},
		{
			name: "Only header",
			file: "Имя;Телефон;Мессенджер\n",
			want: Response{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeClientRepo(tt.existing...)
			uc := NewUseCase(repo, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{File: strings.NewReader(tt.file)})
			require.NoError(t, err)

			assert.Equal(t, tt.want.Total, resp.Total)
			assert.Equal(t, tt.want.Imported, resp.Imported)
			assert.Equal(t, tt.want.Skipped, resp.Skipped)
			assert.Equal(t, tt.want.Invalid, resp.Invalid)

			lines := make([]int, 0, len(resp.Errors))
			for _, e := range resp.Errors {
				lines = append(lines, e.Line)
			}
			if tt.wantLines == nil {
				assert.Empty(t, lines)
			} else {
				assert.Equal(t, tt.wantLines, lines)
			}

			if tt.checkClients != nil {
				tt.checkClients(t, repo)
			}
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := NewUseCase(newFakeClientRepo(), nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{File: strings.NewReader("Анна,\"+7900\n")})
	assert.ErrorIs(t, err, ErrInvalidFile)

	repo := newFakeClientRepo()
	repo.err = errors.New("db down")
	uc = NewUseCase(repo, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{File: strings.NewReader("Анна,+79001234567\n")})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ';', detectDelimiter([]byte("Имя;Телефон;Мессенджер\nАнна;+7900,1;WhatsApp")))
	assert.Equal(t, ',', detectDelimiter([]byte("Имя,Телефон")))
	assert.Equal(t, ',', detectDelimiter(nil))
}
