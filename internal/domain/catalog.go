package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
)

// Category represents a group of readings (e.g. "Таро")
type Category struct {
	ID       uuid.UUID
	Name     string
	Readings []*Reading

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reading represents a bookable service offering
type Reading struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Price      float64
	Duration   deadline.Duration
	Color      *string // Цвет метки в календаре, например "#9b87f5"

	CreatedAt time.Time
	UpdatedAt time.Time
}
