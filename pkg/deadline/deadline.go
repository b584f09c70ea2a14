// Package deadline вычисляет крайний срок выполнения расклада по дате запроса и длительности.
//
// Минутные и часовые длительности прибавляются как есть, время суток сохраняется.
// Длительность в днях всегда заканчивается в DueHour:00 последнего дня.
// Часовой пояс не меняется: расчет идет в локации переданного момента.
package deadline

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit единица измерения длительности
type Unit string

const (
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
	UnitDays    Unit = "days"
)

// DueHour час, к которому должны быть готовы многодневные расклады
const DueHour = 19

// Наибольшие допустимые значения длительности для каждой единицы
const (
	MaxMinutes = math.MaxInt64 / int64(time.Minute)
	MaxHours   = math.MaxInt64 / int64(time.Hour)
	MaxDays    = 100 * 366
)

var (
	// ErrInvalidDuration возвращается при неположительном или слишком большом значении и неизвестной единице
	ErrInvalidDuration = errors.New("deadline: invalid duration")
)

// Duration длительность расклада
type Duration struct {
	Value int  `json:"value"`
	Unit  Unit `json:"unit"`
}

// Validate проверяет длительность
func (d Duration) Validate() error {
	if d.Value <= 0 {
		return fmt.Errorf("%w: value must be positive, got %d", ErrInvalidDuration, d.Value)
	}

	var limit int64
	switch d.Unit {
	case UnitMinutes:
		limit = MaxMinutes
	case UnitHours:
		limit = MaxHours
	case UnitDays:
		limit = MaxDays
	default:
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, d.Unit)
	}
	if int64(d.Value) > limit {
		return fmt.Errorf("%w: value %d exceeds %d %s", ErrInvalidDuration, d.Value, limit, d.Unit)
	}
	return nil
}

// Compute возвращает крайний срок для start и d
func Compute(start time.Time, d Duration) (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}

	switch d.Unit {
	case UnitMinutes:
		return start.Add(time.Duration(d.Value) * time.Minute), nil
	case UnitHours:
		return start.Add(time.Duration(d.Value) * time.Hour), nil
	default:
		due := start.AddDate(0, 0, d.Value)
		return time.Date(due.Year(), due.Month(), due.Day(), DueHour, 0, 0, 0, due.Location()), nil
	}
}

var unitLabels = map[Unit]string{
	UnitMinutes: "минут",
	UnitHours:   "часов",
	UnitDays:    "дней",
}

// Label возвращает подпись длительности в формате таблицы: "30 минут", "2 часов", "3 дней"
func (d Duration) Label() string {
	return fmt.Sprintf("%d %s", d.Value, unitLabels[d.Unit])
}

var labelRE = regexp.MustCompile(`^\s*(\d+)\s+(\p{L}+)`)

// ParseLabel разбирает подпись длительности ("3 дня", "30 минут", "1 час").
// Разбор строгий: решение о значении по умолчанию принимает вызывающий код.
func ParseLabel(label string) (Duration, error) {
	m := labelRE.FindStringSubmatch(label)
	if m == nil {
		return Duration{}, fmt.Errorf("%w: cannot parse label %q", ErrInvalidDuration, label)
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return Duration{}, fmt.Errorf("%w: cannot parse value in %q: %v", ErrInvalidDuration, label, err)
	}

	word := strings.ToLower(m[2])
	var unit Unit
	switch {
	case strings.HasPrefix(word, "мин"):
		unit = UnitMinutes
	case strings.HasPrefix(word, "час"):
		unit = UnitHours
	case strings.HasPrefix(word, "дн"), strings.HasPrefix(word, "ден"), strings.HasPrefix(word, "сут"):
		unit = UnitDays
	default:
		return Duration{}, fmt.Errorf("%w: unknown unit in %q", ErrInvalidDuration, label)
	}

	d := Duration{Value: value, Unit: unit}
	if err := d.Validate(); err != nil {
		return Duration{}, err
	}
	return d, nil
}
