package deadline

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	start := time.Date(2025, 10, 15, 10, 30, 15, 500, moscow)

	tests := []struct {
		name     string
		start    time.Time
		duration Duration
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Minutes keep time of day",
			start:    start,
			duration: Duration{Value: 45, Unit: UnitMinutes},
			want:     time.Date(2025, 10, 15, 11, 15, 15, 500, moscow),
		},
		{
			name:     "Hours keep time of day",
			start:    start,
			duration: Duration{Value: 3, Unit: UnitHours},
			want:     time.Date(2025, 10, 15, 13, 30, 15, 500, moscow),
		},
		{
			name:     "Hours roll over midnight",
			start:    time.Date(2025, 12, 31, 22, 0, 0, 0, moscow),
			duration: Duration{Value: 5, Unit: UnitHours},
			want:     time.Date(2026, 1, 1, 3, 0, 0, 0, moscow),
		},
		{
			name:     "Minutes roll over month end",
			start:    time.Date(2025, 2, 28, 23, 50, 0, 0, time.UTC),
			duration: Duration{Value: 20, Unit: UnitMinutes},
			want:     time.Date(2025, 3, 1, 0, 10, 0, 0, time.UTC),
		},
		{
			name:     "Days land on 19:00",
			start:    start,
			duration: Duration{Value: 3, Unit: UnitDays},
			want:     time.Date(2025, 10, 18, 19, 0, 0, 0, moscow),
		},
		{
			name:     "Days from late evening still land on 19:00",
			start:    time.Date(2025, 10, 15, 23, 59, 59, 0, moscow),
			duration: Duration{Value: 1, Unit: UnitDays},
			want:     time.Date(2025, 10, 16, 19, 0, 0, 0, moscow),
		},
		{
			name:     "Days from midnight",
			start:    time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			duration: Duration{Value: 2, Unit: UnitDays},
			want:     time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC),
		},
		{
			name:     "Zero value",
			start:    start,
			duration: Duration{Value: 0, Unit: UnitDays},
			wantErr:  true,
		},
		{
			name:     "Negative value",
			start:    start,
			duration: Duration{Value: -5, Unit: UnitMinutes},
			wantErr:  true,
		},
		{
			name:     "Unknown unit",
			start:    start,
			duration: Duration{Value: 1, Unit: "weeks"},
			wantErr:  true,
		},
		{
			name:     "Empty unit",
			start:    start,
			duration: Duration{Value: 1},
			wantErr:  true,
		},
		{
			name:     "Huge minutes",
			start:    start,
			duration: Duration{Value: math.MaxInt64 / 60, Unit: UnitMinutes},
			wantErr:  true,
		},
		{
			name:     "Huge hours",
			start:    start,
			duration: Duration{Value: 1 << 40, Unit: UnitHours},
			wantErr:  true,
		},
		{
			name:     "Huge days",
			start:    start,
			duration: Duration{Value: MaxDays + 1, Unit: UnitDays},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.start, tt.duration)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDuration)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, tt.start.Location(), got.Location())
		})
	}
}

func TestCompute_UpperBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		unit  Unit
		limit int64
	}{
		{name: "Minutes", unit: UnitMinutes, limit: MaxMinutes},
		{name: "Hours", unit: UnitHours, limit: MaxHours},
		{name: "Days", unit: UnitDays, limit: MaxDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(start, Duration{Value: int(tt.limit), Unit: tt.unit})
			require.NoError(t, err)
			assert.True(t, got.After(start), "deadline %v is not after start", got)

			_, err = Compute(start, Duration{Value: int(tt.limit + 1), Unit: tt.unit})
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestCompute_DaysIgnoreStartTimeOfDay(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d := Duration{Value: 2, Unit: UnitDays}

	for minute := 0; minute < 24*60; minute += 37 {
		start := base.Add(time.Duration(minute) * time.Minute)
		got, err := Compute(start, d)
		require.NoError(t, err)

		assert.Equal(t, 19, got.Hour())
		assert.Equal(t, 0, got.Minute())
		assert.Equal(t, 0, got.Second())
		assert.Equal(t, 0, got.Nanosecond())
		assert.Equal(t, 3, got.Day())
	}
}

func TestCompute_Deterministic(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 15, 0, 0, time.Local)
	for _, d := range []Duration{
		{Value: 30, Unit: UnitMinutes},
		{Value: 2, Unit: UnitHours},
		{Value: 7, Unit: UnitDays},
	} {
		first, err := Compute(start, d)
		require.NoError(t, err)
		second, err := Compute(start, d)
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	}
}

func TestDuration_Label(t *testing.T) {
	assert.Equal(t, "30 минут", Duration{Value: 30, Unit: UnitMinutes}.Label())
	assert.Equal(t, "2 часов", Duration{Value: 2, Unit: UnitHours}.Label())
	assert.Equal(t, "3 дней", Duration{Value: 3, Unit: UnitDays}.Label())
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label   string
		want    Duration
		wantErr bool
	}{
		{label: "30 минут", want: Duration{Value: 30, Unit: UnitMinutes}},
		{label: "1 минута", want: Duration{Value: 1, Unit: UnitMinutes}},
		{label: "2 часов", want: Duration{Value: 2, Unit: UnitHours}},
		{label: "1 час", want: Duration{Value: 1, Unit: UnitHours}},
		{label: "3 дней", want: Duration{Value: 3, Unit: UnitDays}},
		{label: "2 дня", want: Duration{Value: 2, Unit: UnitDays}},
		{label: "1 день", want: Duration{Value: 1, Unit: UnitDays}},
		{label: "  5 Дней ", want: Duration{Value: 5, Unit: UnitDays}},
		{label: "0 минут", wantErr: true},
		{label: "9999999999999 часов", wantErr: true},
		{label: "3 недели", wantErr: true},
		{label: "три дня", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseLabel(tt.label)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLabel_RoundTrip(t *testing.T) {
	for _, d := range []Duration{
		{Value: 15, Unit: UnitMinutes},
		{Value: 4, Unit: UnitHours},
		{Value: 10, Unit: UnitDays},
	} {
		got, err := ParseLabel(d.Label())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}
