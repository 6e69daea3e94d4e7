package usecase

import (
	"context"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"
	"rampcontrol-service/pkg/logger"
	"rampcontrol-service/pkg/utils"
)

// DashboardService serves the per-(date, shift) dashboard view.
type DashboardService struct {
	reportRepo    repository.ReportRepository
	equipmentRepo repository.EquipmentRepository
	logger        logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	reportRepo repository.ReportRepository,
	equipmentRepo repository.EquipmentRepository,
	logger logger.Logger,
) *DashboardService {
	return &DashboardService{
		reportRepo:    reportRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// DashboardView is the payload behind the dashboard tab. Report is nil when
// no report exists for the pair.
type DashboardView struct {
	Report       *entity.ShiftReport `json:"report"`
	Turnarounds  []string            `json:"turnarounds"`
	Fleet        entity.FleetSummary `json:"fleet"`
	FleetDetails []*entity.Equipment `json:"fleetDetails"`
}

// GetDashboard returns the authoritative report for the pair plus the fleet
// snapshot. Turnarounds are pre-rendered per flight, in flight order.
func (s *DashboardService) GetDashboard(ctx context.Context, date string, shift entity.Shift) (*DashboardView, error) {
	report, err := s.reportRepo.FindLatestByDateShift(ctx, date, shift)
	if err != nil {
		return nil, err
	}

	fleet, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		Report:       report,
		Fleet:        SummarizeFleet(fleet),
		FleetDetails: fleet,
	}
	if report != nil {
		view.Turnarounds = renderTurnarounds(report.Flights)
	}

	s.logger.Debug("Dashboard served", "date", date, "shift", string(shift), "found", report != nil)
	return view, nil
}

// GetFleet returns the fleet snapshot with its status summary, without the
// report lookup the full dashboard view does.
func (s *DashboardService) GetFleet(ctx context.Context) (entity.FleetSummary, []*entity.Equipment, error) {
	fleet, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return entity.FleetSummary{}, nil, err
	}
	return SummarizeFleet(fleet), fleet, nil
}

func renderTurnarounds(flights []entity.Flight) []string {
	out := make([]string, len(flights))
	for i := range flights {
		out[i] = utils.FormatTurnaround(flights[i].LandingTime, flights[i].TowTime)
	}
	return out
}
