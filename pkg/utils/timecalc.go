package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Minutes in a full day, used for the midnight wraparound.
const minutesPerDay = 1440

// TurnaroundPlaceholder is rendered when a flight has no landing time at all.
const TurnaroundPlaceholder = "--"

// ToMinutes converts an "HH:MM" wall-clock string to minutes of day.
// Malformed or empty input degrades to 0; components that fail to parse
// count as 0. It never fails.
func ToMinutes(t string) int {
	if t == "" {
		return 0
	}
	parts := strings.SplitN(t, ":", 2)
	if len(parts) < 2 {
		return 0
	}
	h, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	return h*60 + m
}

// DurationMinutes returns the elapsed minutes between two "HH:MM" values.
// A negative difference wraps past midnight (shifts never span more than
// 24h). Returns 0 when either side is empty.
func DurationMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	diff := ToMinutes(end) - ToMinutes(start)
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// FormatTurnaround renders the ground time between landing and tow as a
// human string. A zero duration with no landing time means "no data" and
// renders the placeholder; a zero duration with a landing time present is a
// real zero-minute turnaround and renders "0min".
func FormatTurnaround(start, end string) string {
	diff := DurationMinutes(start, end)
	if diff == 0 && start == "" {
		return TurnaroundPlaceholder
	}
	h := diff / 60
	m := diff % 60
	if h == 0 {
		return fmt.Sprintf("%dmin", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// CalendarDays returns the whole-day difference between two "YYYY-MM-DD"
// dates. Unparseable dates count as day zero.
func CalendarDays(from, to string) int {
	f, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0
	}
	t, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}

// FormatDateBR converts "YYYY-MM-DD" to the "DD/MM/YYYY" display form used
// in handover messages.
func FormatDateBR(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatDateShort converts "YYYY-MM-DD" to the "DD/MM" chart label form.
func FormatDateShort(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1]
}
