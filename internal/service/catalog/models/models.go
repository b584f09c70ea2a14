package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
)

var (
	// ErrValidation возвращается при некорректных полях запроса
	ErrValidation = errors.New("validation error")
)

// Request модели

// CategoryRequest запрос на создание или переименование категории
type CategoryRequest struct {
	Name string `json:"name"`
}

// Normalize обрезает пробелы и проверяет название
func (r *CategoryRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	return validateName(r.Name)
}

// DurationDTO длительность расклада
type DurationDTO struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"` // minutes, hours, days
}

// ToDomain конвертирует DTO в deadline.Duration
func (d DurationDTO) ToDomain() deadline.Duration {
	return deadline.Duration{Value: d.Value, Unit: deadline.Unit(d.Unit)}
}

// CreateReadingRequest запрос на создание расклада
type CreateReadingRequest struct {
	Name     string      `json:"name"`
	Price    float64     `json:"price"`
	Duration DurationDTO `json:"duration"`
	Color    *string     `json:"color,omitempty"`
}

// Normalize обрезает пробелы и проверяет поля, кроме длительности
func (r *CreateReadingRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName(r.Name); err != nil {
		return err
	}
	if err := validatePrice(r.Price); err != nil {
		return err
	}
	r.Color = normalizeColor(r.Color)
	return validateColor(r.Color)
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateReadingRequest) ToDomain(categoryID uuid.UUID) *domain.Reading {
	return &domain.Reading{
		CategoryID: categoryID,
		Name:       r.Name,
		Price:      r.Price,
		Duration:   r.Duration.ToDomain(),
		Color:      r.Color,
	}
}

// UpdateReadingRequest частичное обновление расклада. Color со значением "" убирает цвет.
type UpdateReadingRequest struct {
	Name     *string      `json:"name,omitempty"`
	Price    *float64     `json:"price,omitempty"`
	Duration *DurationDTO `json:"duration,omitempty"`
	Color    *string      `json:"color,omitempty"`
}

// Apply применяет изменения к раскладу и сообщает, изменились ли поля, скопированные в записи
func (r *UpdateReadingRequest) Apply(reading *domain.Reading) (snapshotChanged bool, err error) {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if err := validateName(name); err != nil {
			return false, err
		}
		snapshotChanged = snapshotChanged || name != reading.Name
		reading.Name = name
	}
	if r.Price != nil {
		if err := validatePrice(*r.Price); err != nil {
			return false, err
		}
		snapshotChanged = snapshotChanged || *r.Price != reading.Price
		reading.Price = *r.Price
	}
	if r.Duration != nil {
		reading.Duration = r.Duration.ToDomain()
	}
	if r.Color != nil {
		reading.Color = normalizeColor(r.Color)
		if err := validateColor(reading.Color); err != nil {
			return false, err
		}
	}
	return snapshotChanged, nil
}

// Response модели

// ReadingResponse ответ с данными расклада
type ReadingResponse struct {
	ID            uuid.UUID   `json:"id"`
	CategoryID    uuid.UUID   `json:"categoryId"`
	Name          string      `json:"name"`
	Price         float64     `json:"price"`
	Duration      DurationDTO `json:"duration"`
	DurationLabel string      `json:"durationLabel"` // "3 дней"
	Color         *string     `json:"color,omitempty"`
}

// CategoryResponse ответ с категорией и ее раскладами
type CategoryResponse struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Readings []ReadingResponse `json:"readings"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// Методы конвертации

// FromDomainReading конвертирует domain модель в DTO
func FromDomainReading(r *domain.Reading) *ReadingResponse {
	if r == nil {
		return nil
	}
	return &ReadingResponse{
		ID:            r.ID,
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Price:         r.Price,
		Duration:      DurationDTO{Value: r.Duration.Value, Unit: string(r.Duration.Unit)},
		DurationLabel: r.Duration.Label(),
		Color:         r.Color,
	}
}

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	resp := &CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Readings: make([]ReadingResponse, 0, len(c.Readings)),
	}
	for _, r := range c.Readings {
		if readingResp := FromDomainReading(r); readingResp != nil {
			resp.Readings = append(resp.Readings, *readingResp)
		}
	}
	return resp
}

// FromDomainCategoryList конвертирует список domain моделей в DTO
func FromDomainCategoryList(categories []*domain.Category) *CategoryListResponse {
	resp := &CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		if categoryResp := FromDomainCategory(c); categoryResp != nil {
			resp.Categories = append(resp.Categories, *categoryResp)
		}
	}
	return resp
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrValidation)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

func normalizeColor(color *string) *string {
	if color == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*color)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validateColor(color *string) error {
	if color != nil && len(*color) > domain.MaxColorLength {
		return fmt.Errorf("%w: color is too long", ErrValidation)
	}
	return nil
}
