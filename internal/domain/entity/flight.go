package entity

import "time"

// Flight is one ground-service event for one aircraft movement within a
// shift. All time-of-day fields are "HH:MM" text and may be empty.
type Flight struct {
	ID           string
	ReportID     string
	Airline      string
	Number       string
	LandingTime  string // pouso
	ChockTime    string // calco
	ServiceStart string
	ServiceEnd   string
	TowTime      string // reboque
	CreatedAt    time.Time
}

// IsValid reports whether the flight is a genuine record rather than an
// empty placeholder row. The authoritative rule is airline presence: some
// historical rows carry the literal string "null" in the airline column.
func (f *Flight) IsValid() bool {
	if f == nil {
		return false
	}
	return f.Airline != "" && f.Airline != "null"
}
