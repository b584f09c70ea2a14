package sheetdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для чтения таблицы SheetDB
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый экземпляр клиента SheetDB
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClients получает лист клиентов
func (c *Client) GetClients(ctx context.Context) ([]ClientRow, error) {
	var rows []ClientRow
	if err := c.getSheet(ctx, SheetClients, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetCatalog получает лист категорий и раскладов
func (c *Client) GetCatalog(ctx context.Context) ([]CatalogRow, error) {
	var rows []CatalogRow
	if err := c.getSheet(ctx, SheetCatalog, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAppointments получает лист записей
func (c *Client) GetAppointments(ctx context.Context) ([]AppointmentRow, error) {
	var rows []AppointmentRow
	if err := c.getSheet(ctx, SheetAppointments, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// getSheet выполняет GET {baseURL}?sheet=<name> и разбирает массив строк
func (c *Client) getSheet(ctx context.Context, sheet string, out interface{}) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("%w: invalid base url: %v", ErrInternal, err)
	}
	query := reqURL.Query()
	query.Set("sheet", sheet)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	c.log.Info("Fetching sheet=%s", sheet)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("SheetDB returned status=%d for sheet=%s", resp.StatusCode, sheet)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode sheet %s: %v", ErrInvalidResponse, sheet, err)
	}

	return nil
}
