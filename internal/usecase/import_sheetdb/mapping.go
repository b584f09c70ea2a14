package import_sheetdb

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/internal/integrations/sheetdb"
	clientModels "github.com/m04kA/SMC-ReadingsCRM/internal/service/clients/models"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/autofill"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// DefaultDuration длительность расклада, если подпись в таблице не разобрать
var DefaultDuration = deadline.Duration{Value: 30, Unit: deadline.UnitMinutes}

// legacyNamespace пространство имен для UUID из строковых ID таблицы
var legacyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://sheetdb.io/smc-readings-crm"))

// LegacyID переводит ID из таблицы в UUID. Один и тот же ID всегда дает один и тот же UUID.
func LegacyID(kind, id string) uuid.UUID {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed
	}
	return uuid.NewSHA1(legacyNamespace, []byte(kind+":"+id))
}

const (
	kindClient      = "client"
	kindCategory    = "category"
	kindReading     = "reading"
	kindAppointment = "appointment"
)

func mapCategory(row sheetdb.CatalogRow) (*domain.Category, bool) {
	if row.ID == "" || row.Name == "" {
		return nil, false
	}
	return &domain.Category{
		ID:   LegacyID(kindCategory, row.ID.String()),
		Name: row.Name.String(),
	}, true
}

// mapReading не проверяет наличие категории, это делает вызывающий код
func mapReading(row sheetdb.CatalogRow) (*domain.Reading, bool) {
	if row.ID == "" || row.Name == "" || row.ParentID == "" {
		return nil, false
	}

	duration, err := deadline.ParseLabel(row.Duration.String())
	if err != nil {
		duration = DefaultDuration
	}

	reading := &domain.Reading{
		ID:         LegacyID(kindReading, row.ID.String()),
		CategoryID: LegacyID(kindCategory, row.ParentID.String()),
		Name:       row.Name.String(),
		Price:      parsePrice(row.Price.String()),
		Duration:   duration,
	}
	if row.Color != "" {
		color := row.Color.String()
		reading.Color = &color
	}
	return reading, true
}

func mapClient(row sheetdb.ClientRow) (*domain.Client, bool) {
	if row.ID == "" {
		return nil, false
	}

	req := &clientModels.CreateClientRequest{
		Name:      row.Name.String(),
		Phone:     row.Phone.String(),
		Messenger: string(domain.ParseMessenger(row.Messenger.String())),
		Birthdate: parseBirthdate(row.Birthdate.String()),
	}
	if err := req.Normalize(); err != nil {
		return nil, false
	}

	client := req.ToDomain()
	client.ID = LegacyID(kindClient, row.ID.String())
	return client, true
}

// mapAppointment собирает запись. Клиент и расклад должны быть уже найдены.
func mapAppointment(row sheetdb.AppointmentRow, client *domain.Client, reading *domain.Reading, loc *time.Location) (*domain.Appointment, bool) {
	if row.ID == "" {
		return nil, false
	}

	requestDate, err := types.ParseLocalTime(row.RequestDate.String(), loc)
	if err != nil {
		return nil, false
	}

	due, err := types.ParseLocalTime(row.Deadline.String(), loc)
	if err != nil {
		due, err = deadline.Compute(requestDate, reading.Duration)
		if err != nil {
			return nil, false
		}
	}

	appointment := &domain.Appointment{
		ID:          LegacyID(kindAppointment, row.ID.String()),
		RequestDate: types.WallClock(requestDate),
		Request:     row.Request.String(),
		Deadline:    types.WallClock(due),
		Completed:   strings.EqualFold(row.Completed.String(), "true"),
	}
	appointment.ApplyClient(client)
	appointment.ApplyReading(reading)

	// В таблице хранится снимок на момент записи, он важнее текущих данных
	if row.ClientName != "" {
		appointment.ClientName = row.ClientName.String()
	}
	if row.ClientPhone != "" {
		appointment.ClientPhone = clientModels.NormalizePhone(row.ClientPhone.String())
	}
	if row.ClientMessenger != "" {
		appointment.ClientMessenger = domain.ParseMessenger(row.ClientMessenger.String())
	}
	if row.ReadingName != "" {
		appointment.ReadingName = row.ReadingName.String()
	}
	if row.Price != "" {
		appointment.Price = parsePrice(row.Price.String())
	}

	return appointment, true
}

// parsePrice разбирает цену, нераспознанное или отрицательное значение дает 0
func parsePrice(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

func parseBirthdate(s string) *types.Date {
	if s == "" {
		return nil
	}
	if d, err := types.ParseDate(s); err == nil {
		return &d
	}
	if t, err := types.ParseLocalTime(s, time.UTC); err == nil {
		d := types.DateOf(t)
		return &d
	}
	if d, ok := autofill.ExtractBirthdate(s); ok {
		return &d
	}
	return nil
}
