package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"regular time", "08:00", 480},
		{"end of day", "23:59", 1439},
		{"midnight", "00:00", 0},
		{"empty", "", 0},
		{"no colon", "0800", 0},
		{"out of range components use the literal formula", "25:99", 1599},
		{"garbage components count as zero", "ab:cd", 0},
		{"partial garbage", "10:xx", 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinutes(tt.input))
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"same day", "08:00", "09:30", 90},
		{"wraps past midnight", "23:30", "00:15", 45},
		{"missing start", "", "10:00", 0},
		{"missing end", "10:00", "", 0},
		{"both missing", "", "", 0},
		{"zero duration", "10:00", "10:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(tt.start, tt.end))
		})
	}
}

func TestFormatTurnaround(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"hours and minutes", "08:00", "09:30", "1h 30m"},
		{"exact hour", "08:00", "09:00", "1h 0m"},
		{"under an hour", "08:00", "08:45", "45min"},
		{"no data at all", "", "", "--"},
		// start present with no end is real data, not a placeholder
		{"missing end renders zero", "08:00", "", "0min"},
		{"zero-minute turnaround", "08:00", "08:00", "0min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTurnaround(tt.start, tt.end))
		})
	}
}

func TestCalendarDays(t *testing.T) {
	assert.Equal(t, 3, CalendarDays("2024-01-01", "2024-01-04"))
	assert.Equal(t, 0, CalendarDays("2024-01-01", "2024-01-01"))
	assert.Equal(t, 0, CalendarDays("not-a-date", "2024-01-01"))
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatDateBR("2024-03-05"))
	assert.Equal(t, "05/03", FormatDateShort("2024-03-05"))
	assert.Equal(t, "garbage", FormatDateBR("garbage"))
}
