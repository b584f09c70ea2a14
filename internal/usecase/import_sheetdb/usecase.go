package import_sheetdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
	"github.com/m04kA/SMC-ReadingsCRM/internal/integrations/sheetdb"
)

// UseCase use case импорта данных из старой таблицы SheetDB.
// Повторный импорт идемпотентен: ID таблицы переводятся в UUID детерминированно.
type UseCase struct {
	sheetClient     SheetClient
	clientRepo      ClientRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sheetClient SheetClient,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		sheetClient:     sheetClient,
		clientRepo:      clientRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		location:        location,
		logger:          logger,
	}
}

type sheets struct {
	clients      []sheetdb.ClientRow
	catalog      []sheetdb.CatalogRow
	appointments []sheetdb.AppointmentRow
}

// Execute выполняет импорт: категории, расклады, клиенты, записи
func (uc *UseCase) Execute(ctx context.Context, _ *Request) (*Response, error) {
	uc.logger.Info("ImportSheetDB: starting import")

	// 1. Загружаем листы параллельно
	data, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}

	resp := &Response{}

	// 2. Категории
	categories := make(map[uuid.UUID]struct{})
	for _, row := range data.catalog {
		if row.Type != sheetdb.TypeCategory {
			continue
		}
		resp.Categories.Total++
		category, ok := mapCategory(row)
		if !ok {
			resp.Categories.Invalid++
			continue
		}
		if err := uc.catalogRepo.UpsertCategory(ctx, category); err != nil {
			return nil, uc.internal("upsert category", row.ID.String(), err)
		}
		categories[category.ID] = struct{}{}
		resp.Categories.Imported++
	}

	// 3. Расклады
	readings := make(map[uuid.UUID]*domain.Reading)
	for _, row := range data.catalog {
		if row.Type != sheetdb.TypeReading {
			continue
		}
		resp.Readings.Total++
		reading, ok := mapReading(row)
		if !ok {
			resp.Readings.Invalid++
			continue
		}
		if _, ok := categories[reading.CategoryID]; !ok {
			uc.logger.Warn("ImportSheetDB: reading %s refers to unknown category %s", row.ID, row.ParentID)
			resp.Readings.Skipped++
			continue
		}
		if err := uc.catalogRepo.UpsertReading(ctx, reading); err != nil {
			return nil, uc.internal("upsert reading", row.ID.String(), err)
		}
		readings[reading.ID] = reading
		resp.Readings.Imported++
	}

	// 4. Клиенты
	clients := make(map[uuid.UUID]*domain.Client)
	for _, row := range data.clients {
		resp.Clients.Total++
		c, ok := mapClient(row)
		if !ok {
			resp.Clients.Invalid++
			continue
		}
		if err := uc.clientRepo.Upsert(ctx, c); err != nil {
			if errors.Is(err, client.ErrPhoneAlreadyExists) {
				uc.logger.Warn("ImportSheetDB: client %s has a phone of another client, skipped", row.ID)
				resp.Clients.Skipped++
				continue
			}
			return nil, uc.internal("upsert client", row.ID.String(), err)
		}
		clients[c.ID] = c
		resp.Clients.Imported++
	}

	// 5. Записи
	for _, row := range data.appointments {
		resp.Appointments.Total++
		c, okClient := clients[LegacyID(kindClient, row.ClientID.String())]
		reading, okReading := readings[LegacyID(kindReading, row.ReadingID.String())]
		if !okClient || !okReading {
			resp.Appointments.Skipped++
			continue
		}
		appointment, ok := mapAppointment(row, c, reading, uc.location)
		if !ok {
			resp.Appointments.Invalid++
			continue
		}
		if err := uc.appointmentRepo.Upsert(ctx, appointment); err != nil {
			return nil, uc.internal("upsert appointment", row.ID.String(), err)
		}
		resp.Appointments.Imported++
	}

	uc.logger.Info("ImportSheetDB: categories=%+v, readings=%+v, clients=%+v, appointments=%+v",
		resp.Categories, resp.Readings, resp.Clients, resp.Appointments)
	return resp, nil
}

// fetch загружает три листа одновременно
func (uc *UseCase) fetch(ctx context.Context) (*sheets, error) {
	data := &sheets{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := uc.sheetClient.GetClients(gctx)
		data.clients = rows
		return err
	})
	g.Go(func() error {
		rows, err := uc.sheetClient.GetCatalog(gctx)
		data.catalog = rows
		return err
	})
	g.Go(func() error {
		rows, err := uc.sheetClient.GetAppointments(gctx)
		data.appointments = rows
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, sheetdb.ErrNotConfigured) {
			uc.logger.Warn("ImportSheetDB: sheetdb url is not configured")
			return nil, ErrNotConfigured
		}
		uc.logger.Error("ImportSheetDB: failed to fetch sheets: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	uc.logger.Info("ImportSheetDB: fetched clients=%d, catalog=%d, appointments=%d",
		len(data.clients), len(data.catalog), len(data.appointments))
	return data, nil
}

func (uc *UseCase) internal(op, rowID string, err error) error {
	uc.logger.Error("ImportSheetDB: failed to %s %s: %v", op, rowID, err)
	return fmt.Errorf("%w: %s %s: %v", ErrInternal, op, rowID, err)
}
