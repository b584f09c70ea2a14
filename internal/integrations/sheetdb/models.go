package sheetdb

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Названия листов таблицы
const (
	SheetClients      = "Клиенты"
	SheetCatalog      = "Категории и расклады"
	SheetAppointments = "Записи"
)

// Значения колонки "Тип" на листе каталога
const (
	TypeCategory = "категория"
	TypeReading  = "расклад"
)

// Cell значение ячейки. Таблица отдает строки, числа, булевы значения и null вперемешку.
type Cell string

// UnmarshalJSON принимает строку, число, булево значение или null
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(strings.TrimSpace(s))
		return nil
	default:
		*c = Cell(data)
		return nil
	}
}

// String возвращает значение ячейки
func (c Cell) String() string {
	return string(c)
}

// ClientRow строка листа "Клиенты"
type ClientRow struct {
	ID        Cell `json:"ID"`
	Name      Cell `json:"Имя"`
	Birthdate Cell `json:"Дата рождения"`
	Phone     Cell `json:"Телефон"`
	Messenger Cell `json:"Мессенджер"`
}

// CatalogRow строка листа "Категории и расклады": категория или расклад
type CatalogRow struct {
	ID       Cell `json:"ID"`
	Type     Cell `json:"Тип"`
	Name     Cell `json:"Название"`
	ParentID Cell `json:"ID родителя"`
	Price    Cell `json:"Цена"`
	Duration Cell `json:"Длительность"` // "3 дней", "30 минут"
	Color    Cell `json:"Цвет"`
}

// AppointmentRow строка листа "Записи"
type AppointmentRow struct {
	ID              Cell `json:"ID"`
	ClientID        Cell `json:"ID клиента"`
	ClientName      Cell `json:"Имя клиента"`
	ClientPhone     Cell `json:"Телефон клиента"`
	ClientMessenger Cell `json:"Мессенджер клиента"`
	RequestDate     Cell `json:"Дата запроса"`
	Request         Cell `json:"Запрос"`
	CategoryID      Cell `json:"ID категории"`
	ReadingID       Cell `json:"ID расклада"`
	ReadingName     Cell `json:"Название расклада"`
	Price           Cell `json:"Цена"`
	Deadline        Cell `json:"Крайний срок"`
	Completed       Cell `json:"Выполнено"`
}

// ErrorResponse модель ошибки от SheetDB
type ErrorResponse struct {
	Error string `json:"error"`
}
