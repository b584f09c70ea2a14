package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{name: "regular date", year: 1990, month: time.March, day: 25},
		{name: "leap day", year: 2024, month: time.February, day: 29},
		{name: "leap day in common year", year: 2023, month: time.February, day: 29, wantErr: true},
		{name: "31 february", year: 1990, month: time.February, day: 31, wantErr: true},
		{name: "month 13", year: 1990, month: 13, day: 1, wantErr: true},
		{name: "day zero", year: 1990, month: time.January, day: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				assert.True(t, d.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, d.Year())
			assert.Equal(t, tt.month, d.Month())
			assert.Equal(t, tt.day, d.Day())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-03-25")
	require.NoError(t, err)
	assert.Equal(t, "1990-03-25", d.String())

	_, err = ParseDate("1990-02-31")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("25.03.1990")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Birthdate *Date `json:"birthdate,omitempty"`
		Other     Date  `json:"other"`
	}

	d, err := NewDate(1988, time.May, 15)
	require.NoError(t, err)

	data, err := json.Marshal(payload{Birthdate: &d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthdate":"1988-05-15","other":null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"birthdate":"2001-12-01","other":""}`), &decoded))
	require.NotNil(t, decoded.Birthdate)
	assert.Equal(t, "2001-12-01", decoded.Birthdate.String())
	assert.True(t, decoded.Other.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"birthdate":"2001-02-30"}`), &decoded))
}

func TestDate_ScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1995, 3, 25, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1995-03-25", d.String())

	require.NoError(t, d.Scan([]byte("2000-01-02T00:00:00Z")))
	assert.Equal(t, "2000-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	d, _ = NewDate(2010, time.July, 7)
	v, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2010-07-07", v)

	assert.Error(t, d.Scan(42))
}

func TestWallClock(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	in := time.Date(2025, 10, 15, 10, 30, 0, 0, moscow)

	got := WallClock(in)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 15, got.Day())

	back := InLocation(got, moscow)
	assert.True(t, back.Equal(in))
	assert.Equal(t, got, InLocation(got, nil))
}

func TestParseLocalTime(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only is midnight", input: "2025-10-15", want: time.Date(2025, 10, 15, 0, 0, 0, 0, moscow)},
		{name: "seconds", input: "2025-10-15T10:30:45", want: time.Date(2025, 10, 15, 10, 30, 45, 0, moscow)},
		{name: "minutes", input: "2025-10-15T10:30", want: time.Date(2025, 10, 15, 10, 30, 0, 0, moscow)},
		{name: "space separator", input: " 2025-10-15 10:30 ", want: time.Date(2025, 10, 15, 10, 30, 0, 0, moscow)},
		{name: "offset dropped", input: "2025-10-15T10:30:00Z", want: time.Date(2025, 10, 15, 10, 30, 0, 0, moscow)},
		{name: "garbage", input: "15 октября", wantErr: true},
		{name: "invalid day", input: "2025-02-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalTime(tt.input, moscow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateTime)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, FormatLocalTime(tt.want), FormatLocalTime(got))
		})
	}
}
