package entity

// DailyFlightCount is one bar of the flights-per-day chart.
type DailyFlightCount struct {
	Date    string `json:"date"`  // YYYY-MM-DD
	Label   string `json:"label"` // DD/MM
	Flights int    `json:"flights"`
}

// FlightHistoryEntry is a valid flight annotated with its parent report, for
// the drill-down history view.
type FlightHistoryEntry struct {
	Flight
	ReportDate  string `json:"reportDate"`
	ReportShift Shift  `json:"reportShift"`
	Leader      string `json:"leader"`
}

// PeriodSummary holds the aggregates for one date range / shift filter.
type PeriodSummary struct {
	TotalFlights             int                  `json:"totalFlights"`
	FlightsWithTurnaround    int                  `json:"flightsWithTurnaround"`
	TurnaroundMinutesTotal   int                  `json:"turnaroundMinutesTotal"`
	AverageTurnaroundMinutes int                  `json:"averageTurnaroundMinutes"`
	RentalCount              int                  `json:"rentalCount"`
	RentalHours              int                  `json:"rentalHours"`
	DailyFlightCounts        []DailyFlightCount   `json:"dailyFlightCounts"`
	FlatFlightList           []FlightHistoryEntry `json:"flights"`
}

// MaintenanceCycle is one reconciled sent/returned pair for a piece of
// equipment. Derived, never persisted.
type MaintenanceCycle struct {
	Prefix      string `json:"prefix"`
	EntryDate   string `json:"entryDate"`
	EntryShift  Shift  `json:"entryShift"`
	EntryLeader string `json:"entryLeader"`
	Reason      string `json:"reason"`
	ExitDate    string `json:"exitDate"`
	ExitShift   Shift  `json:"exitShift"`
	ExitLeader  string `json:"exitLeader"`
	ElapsedDays int    `json:"elapsedDays"`
}

// OpenMaintenance is a sent event with no matching return yet.
type OpenMaintenance struct {
	Prefix      string `json:"prefix"`
	EntryDate   string `json:"entryDate"`
	EntryShift  Shift  `json:"entryShift"`
	EntryLeader string `json:"entryLeader"`
	Reason      string `json:"reason"`
}

// EquipmentDown is a unit currently in maintenance per the fleet snapshot.
// DaysSinceSent is nil when the sending event predates the queried window.
type EquipmentDown struct {
	Prefix        string `json:"prefix"`
	Name          string `json:"name"`
	DaysSinceSent *int   `json:"daysSinceSent"`
}

// FleetSummary tallies the fleet snapshot by status. Total counts only the
// three known buckets; malformed statuses are excluded.
type FleetSummary struct {
	Operational   int `json:"operational"`
	InMaintenance int `json:"inMaintenance"`
	Rented        int `json:"rented"`
	Total         int `json:"total"`
}

// ReliabilityRank is one row of the most-frequently-repaired ranking.
type ReliabilityRank struct {
	Prefix string `json:"prefix"`
	Cycles int    `json:"cycles"`
}
