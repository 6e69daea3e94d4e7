package usecase

import (
	"context"
	"time"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"
	"rampcontrol-service/pkg/logger"
	"rampcontrol-service/pkg/metrics"
)

// chart shows at most this many days
const chartWindowDays = 15

// AnalyticsService recomputes the period analytics from a fresh snapshot on
// every call. There is no incremental state: concurrent calls for different
// windows are independent.
type AnalyticsService struct {
	reportRepo    repository.ReportRepository
	equipmentRepo repository.EquipmentRepository
	aggregator    *PeriodAggregator
	reconciler    *MaintenanceReconciler
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	reportRepo repository.ReportRepository,
	equipmentRepo repository.EquipmentRepository,
	aggregator *PeriodAggregator,
	reconciler *MaintenanceReconciler,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		reportRepo:    reportRepo,
		equipmentRepo: equipmentRepo,
		aggregator:    aggregator,
		reconciler:    reconciler,
		metrics:       metrics,
		logger:        logger,
	}
}

// AnalyticsResult is the full payload behind the analytics view.
type AnalyticsResult struct {
	Summary       *entity.PeriodSummary     `json:"summary"`
	ChartData     []entity.DailyFlightCount `json:"chartData"`
	ClosedCycles  []entity.MaintenanceCycle `json:"maintenanceCycles"`
	EquipmentDown []entity.EquipmentDown    `json:"equipmentDown"`
	Ranking       []entity.ReliabilityRank  `json:"reliabilityRanking"`
	Fleet         entity.FleetSummary       `json:"fleet"`
	FleetDetails  []*entity.Equipment       `json:"fleetDetails"`
}

// BuildPeriodAnalytics fetches the window snapshot and runs the aggregation
// pipeline over it. Fetch failures propagate; the computation itself cannot
// fail.
func (s *AnalyticsService) BuildPeriodAnalytics(ctx context.Context, start, end string, shift entity.Shift) (*AnalyticsResult, error) {
	started := time.Now()

	reports, err := s.reportRepo.FindByDateRange(ctx, start, end, shift)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("fetch_reports").Inc()
		return nil, err
	}

	fleet, err := s.equipmentRepo.List(ctx)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("fetch_fleet").Inc()
		return nil, err
	}

	summary := s.aggregator.Aggregate(reports)
	today := time.Now().Format("2006-01-02")
	reconciled := s.reconciler.Reconcile(reports, fleet, today)
	fleetSummary := SummarizeFleet(fleet)

	chart := summary.DailyFlightCounts
	if len(chart) > chartWindowDays {
		chart = chart[len(chart)-chartWindowDays:]
	}

	s.metrics.AggregationsRun.Inc()
	s.metrics.AggregationTime.Observe(time.Since(started).Seconds())
	s.metrics.FleetOperational.Set(float64(fleetSummary.Operational))
	s.metrics.FleetInMaintenance.Set(float64(fleetSummary.InMaintenance))
	s.metrics.FleetRented.Set(float64(fleetSummary.Rented))

	s.logger.Info("Period analytics built",
		"start", start,
		"end", end,
		"shift", string(shift),
		"reports", len(reports),
		"flights", summary.TotalFlights,
		"closedCycles", len(reconciled.ClosedCycles))

	return &AnalyticsResult{
		Summary:       summary,
		ChartData:     chart,
		ClosedCycles:  reconciled.ClosedCycles,
		EquipmentDown: reconciled.EquipmentDown,
		Ranking:       RankReliability(reconciled.ClosedCycles),
		Fleet:         fleetSummary,
		FleetDetails:  fleet,
	}, nil
}
