package entity

import (
	"strings"
	"time"
)

// Shift is one of the three daily work periods.
type Shift string

const (
	ShiftMorning   Shift = "manha"
	ShiftAfternoon Shift = "tarde"
	ShiftNight     Shift = "noite"
)

// morning carries an accent in part of the historical data
const shiftMorningAccented = "manhã"

// NormalizeShift canonicalizes the stored spelling variants into the Shift
// enum. Unknown values pass through unchanged so they stay visible.
func NormalizeShift(s string) Shift {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == shiftMorningAccented {
		return ShiftMorning
	}
	return Shift(v)
}

// StoredValues returns every spelling a shift may have in the database.
// Morning matches both the plain and the accented form.
func (s Shift) StoredValues() []string {
	if s == ShiftMorning {
		return []string{string(ShiftMorning), shiftMorningAccented}
	}
	return []string{string(s)}
}

// Display returns the user-facing spelling (morning with the accent).
func (s Shift) Display() string {
	if s == ShiftMorning {
		return shiftMorningAccented
	}
	return string(s)
}

// ShiftReport is one handover record for one (date, shift) pair. Reports are
// immutable once persisted; when multiple exist for the same pair the one
// with the latest CreatedAt is authoritative.
type ShiftReport struct {
	ID     string
	Title  string
	Date   string // YYYY-MM-DD
	Shift  Shift
	Leader string

	HadAbsence        bool // teve_falta
	HadMedicalLeave   bool // teve_atestado
	HadCompensation   bool // teve_compensacao
	HadEarlyDeparture bool // teve_saida_antecipada

	HasPendingIssues    bool
	PendingIssuesDetail string
	HasOccurrences      bool
	OccurrencesDetail   string

	HasRental      bool
	RentalUnit     string
	RentalStart    string // HH:MM
	RentalEnd      string // HH:MM
	EquipmentSent  bool
	SentPrefix     string
	SentReason     string
	EquipmentBack  bool
	ReturnedPrefix string

	TotalFlights int
	Flights      []Flight

	RawMessage  string
	ProcessedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidFlightCount is the number of genuine (non-placeholder) flight rows.
func (r *ShiftReport) ValidFlightCount() int {
	n := 0
	for i := range r.Flights {
		if r.Flights[i].IsValid() {
			n++
		}
	}
	return n
}
