package usecase

import (
	"math"
	"sort"
	"strings"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/pkg/logger"
	"rampcontrol-service/pkg/utils"
)

// PeriodAggregator computes the per-period flight and rental aggregates.
// It is a pure pass over already-fetched reports: no retained state, safe
// to re-run at any time.
type PeriodAggregator struct {
	logger logger.Logger
}

// NewPeriodAggregator creates a new period aggregator
func NewPeriodAggregator(logger logger.Logger) *PeriodAggregator {
	return &PeriodAggregator{
		logger: logger,
	}
}

// Aggregate walks the reports once and accumulates the period summary.
// Reports are expected ascending by date; the flat flight list comes out
// reverse-chronological for the history view. Placeholder flight rows are
// filtered by the validator and contribute to nothing. Flights whose
// turnaround computes to zero count as flights but are excluded from the
// average (zero here means missing data, not a zero-minute turnaround).
func (a *PeriodAggregator) Aggregate(reports []*entity.ShiftReport) *entity.PeriodSummary {
	summary := &entity.PeriodSummary{
		DailyFlightCounts: []entity.DailyFlightCount{},
		FlatFlightList:    []entity.FlightHistoryEntry{},
	}

	countsByDate := make(map[string]int)
	rentalMinutes := 0

	for _, report := range reports {
		if report.HasRental {
			summary.RentalCount++
			rentalMinutes += utils.DurationMinutes(report.RentalStart, report.RentalEnd)
		}

		daily := 0
		for i := range report.Flights {
			flight := &report.Flights[i]
			if !flight.IsValid() {
				continue
			}
			summary.TotalFlights++
			daily++

			dur := utils.DurationMinutes(flight.LandingTime, flight.TowTime)
			if dur > 0 {
				summary.TurnaroundMinutesTotal += dur
				summary.FlightsWithTurnaround++
			}

			summary.FlatFlightList = append(summary.FlatFlightList, entity.FlightHistoryEntry{
				Flight:      *flight,
				ReportDate:  report.Date,
				ReportShift: report.Shift,
				Leader:      report.Leader,
			})
		}
		countsByDate[report.Date] += daily
	}

	summary.RentalHours = int(math.Round(float64(rentalMinutes) / 60))

	if summary.FlightsWithTurnaround > 0 {
		avg := float64(summary.TurnaroundMinutesTotal) / float64(summary.FlightsWithTurnaround)
		summary.AverageTurnaroundMinutes = int(math.Round(avg))
	}

	dates := make([]string, 0, len(countsByDate))
	for date := range countsByDate {
		dates = append(dates, date)
	}
	// ISO dates sort chronologically as text
	sort.Strings(dates)
	for _, date := range dates {
		summary.DailyFlightCounts = append(summary.DailyFlightCounts, entity.DailyFlightCount{
			Date:    date,
			Label:   utils.FormatDateShort(date),
			Flights: countsByDate[date],
		})
	}

	// history view wants newest reports first
	reverseFlights(summary.FlatFlightList)

	a.logger.Debug("Period aggregated",
		"reports", len(reports),
		"flights", summary.TotalFlights,
		"avgTurnaround", summary.AverageTurnaroundMinutes)

	return summary
}

func reverseFlights(list []entity.FlightHistoryEntry) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}

// FilterFlightHistory narrows a flight history list by a case-insensitive
// search over flight number, airline and shift leader.
func FilterFlightHistory(list []entity.FlightHistoryEntry, query string) []entity.FlightHistoryEntry {
	if query == "" {
		return list
	}
	q := strings.ToLower(query)
	filtered := make([]entity.FlightHistoryEntry, 0, len(list))
	for _, e := range list {
		if strings.Contains(strings.ToLower(e.Number), q) ||
			strings.Contains(strings.ToLower(e.Airline), q) ||
			strings.Contains(strings.ToLower(e.Leader), q) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
