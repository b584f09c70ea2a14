package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WallClock возвращает те же часы и дату, но в UTC.
// Так хранятся моменты в колонках TIMESTAMP без часового пояса, и так их можно сравнивать между собой.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// InLocation переносит показания часов в loc без пересчета: 10:00 UTC становится 10:00 loc
func InLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// LocalTimeFormat формат момента без часового пояса
const LocalTimeFormat = "2006-01-02T15:04:05"

// ErrInvalidDateTime возвращается, когда строку нельзя разобрать как дату или дату со временем
var ErrInvalidDateTime = errors.New("types: invalid date-time")

var localLayouts = []string{
	LocalTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseLocalTime разбирает момент в loc. Дата без времени означает полночь.
// Смещение из RFC3339 отбрасывается: сохраняются только показания часов.
func ParseLocalTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return InLocation(t, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// FormatLocalTime форматирует показания часов без часового пояса
func FormatLocalTime(t time.Time) string {
	return t.Format(LocalTimeFormat)
}
