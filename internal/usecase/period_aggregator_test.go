package usecase

import (
	"testing"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReports() []*entity.ShiftReport {
	return []*entity.ShiftReport{
		{
			Date:   "2024-01-01",
			Shift:  entity.ShiftMorning,
			Leader: "Carlos",
			Flights: []entity.Flight{
				{Airline: "GOL", Number: "1001", LandingTime: "08:00", TowTime: "08:30"},
				{Airline: "AZUL", Number: "2002", LandingTime: "09:00"},
			},
		},
		{
			Date:      "2024-01-02",
			Shift:     entity.ShiftNight,
			Leader:    "Ana",
			HasRental: true, RentalStart: "08:00", RentalEnd: "11:30",
			Flights: []entity.Flight{
				{Airline: "LATAM", Number: "3003", LandingTime: "10:00", TowTime: "11:00"},
				{Airline: "", Number: ""}, // placeholder row
			},
		},
	}
}

func TestAggregateCountsAndDailyBuckets(t *testing.T) {
	agg := NewPeriodAggregator(logger.NewNop())
	summary := agg.Aggregate(sampleReports())

	assert.Equal(t, 3, summary.TotalFlights)
	require.Len(t, summary.DailyFlightCounts, 2)
	assert.Equal(t, "2024-01-01", summary.DailyFlightCounts[0].Date)
	assert.Equal(t, 2, summary.DailyFlightCounts[0].Flights)
	assert.Equal(t, "2024-01-02", summary.DailyFlightCounts[1].Date)
	assert.Equal(t, 1, summary.DailyFlightCounts[1].Flights)
	assert.Equal(t, "01/01", summary.DailyFlightCounts[0].Label)
}

func TestAggregateAverageExcludesZeroDurations(t *testing.T) {
	// durations 30, 0 (missing tow) and 60: the zero entry counts as a
	// flight but not toward the average
	agg := NewPeriodAggregator(logger.NewNop())
	reports := []*entity.ShiftReport{{
		Date: "2024-01-01",
		Flights: []entity.Flight{
			{Airline: "GOL", LandingTime: "08:00", TowTime: "08:30"},
			{Airline: "GOL", LandingTime: "09:00"},
			{Airline: "GOL", LandingTime: "10:00", TowTime: "11:00"},
		},
	}}

	summary := agg.Aggregate(reports)
	assert.Equal(t, 3, summary.TotalFlights)
	assert.Equal(t, 2, summary.FlightsWithTurnaround)
	assert.Equal(t, 45, summary.AverageTurnaroundMinutes)
}

func TestAggregateNoComputableTurnarounds(t *testing.T) {
	agg := NewPeriodAggregator(logger.NewNop())
	summary := agg.Aggregate([]*entity.ShiftReport{{
		Date:    "2024-01-01",
		Flights: []entity.Flight{{Airline: "GOL"}},
	}})
	assert.Equal(t, 0, summary.AverageTurnaroundMinutes)
}

func TestAggregateRentals(t *testing.T) {
	agg := NewPeriodAggregator(logger.NewNop())
	summary := agg.Aggregate(sampleReports())

	assert.Equal(t, 1, summary.RentalCount)
	// 3h30 rounds to 4 hours
	assert.Equal(t, 4, summary.RentalHours)
}

func TestAggregateRentalHoursRoundsSummedMinutes(t *testing.T) {
	// 1h20 + 0h50 = 130min; rounding applies to the sum, not per rental
	agg := NewPeriodAggregator(logger.NewNop())
	summary := agg.Aggregate([]*entity.ShiftReport{
		{Date: "2024-01-01", HasRental: true, RentalStart: "08:00", RentalEnd: "09:20"},
		{Date: "2024-01-02", HasRental: true, RentalStart: "10:00", RentalEnd: "10:50"},
	})

	assert.Equal(t, 2, summary.RentalCount)
	assert.Equal(t, 2, summary.RentalHours)
}

func TestAggregateFlatListIsReverseChronological(t *testing.T) {
	agg := NewPeriodAggregator(logger.NewNop())
	summary := agg.Aggregate(sampleReports())

	require.Len(t, summary.FlatFlightList, 3)
	assert.Equal(t, "2024-01-02", summary.FlatFlightList[0].ReportDate)
	assert.Equal(t, "Ana", summary.FlatFlightList[0].Leader)
	assert.Equal(t, entity.ShiftNight, summary.FlatFlightList[0].ReportShift)
	assert.Equal(t, "2024-01-01", summary.FlatFlightList[2].ReportDate)
}

func TestAggregateIsIdempotent(t *testing.T) {
	agg := NewPeriodAggregator(logger.NewNop())
	reports := sampleReports()

	first := agg.Aggregate(reports)
	second := agg.Aggregate(reports)
	assert.Equal(t, first, second)
}

func TestAggregateWrapsMidnight(t *testing.T) {
	agg := NewPeriodAggregator(logger.NewNop())
	summary := agg.Aggregate([]*entity.ShiftReport{{
		Date:    "2024-01-01",
		Flights: []entity.Flight{{Airline: "GOL", LandingTime: "23:30", TowTime: "00:15"}},
	}})
	assert.Equal(t, 45, summary.AverageTurnaroundMinutes)
}

func TestFilterFlightHistory(t *testing.T) {
	list := []entity.FlightHistoryEntry{
		{Flight: entity.Flight{Airline: "GOL", Number: "1001"}, Leader: "Carlos"},
		{Flight: entity.Flight{Airline: "AZUL", Number: "2002"}, Leader: "Ana"},
	}

	assert.Len(t, FilterFlightHistory(list, ""), 2)
	assert.Len(t, FilterFlightHistory(list, "gol"), 1)
	assert.Len(t, FilterFlightHistory(list, "ana"), 1)
	assert.Len(t, FilterFlightHistory(list, "200"), 1)
	assert.Empty(t, FilterFlightHistory(list, "latam"))
}
