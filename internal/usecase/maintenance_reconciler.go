package usecase

import (
	"sort"
	"strings"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/pkg/logger"
	"rampcontrol-service/pkg/utils"
)

// MaintenanceReconciler pairs "equipment sent" events with later
// "equipment returned" events and tracks what is still down.
type MaintenanceReconciler struct {
	logger logger.Logger
}

// NewMaintenanceReconciler creates a new maintenance reconciler
func NewMaintenanceReconciler(logger logger.Logger) *MaintenanceReconciler {
	return &MaintenanceReconciler{
		logger: logger,
	}
}

// ReconcileResult holds the outcome of one reconciliation pass.
type ReconcileResult struct {
	ClosedCycles  []entity.MaintenanceCycle
	OpenEvents    map[string]entity.OpenMaintenance
	EquipmentDown []entity.EquipmentDown
}

// normalizePrefix is the join key between report fields and the fleet
// table. Matching is exact on the normalized form; the substring matching
// some historical revisions used would pair TB-1 with TB-10.
func normalizePrefix(prefix string) string {
	return strings.ToUpper(strings.TrimSpace(prefix))
}

// Reconcile walks reports in chronological order, pairing sent events with
// returns for the same equipment prefix. A second send before a return
// replaces the pending entry (last-sent-wins); returns with no open match
// are dropped, so cycles that started before the queried window are not
// counted. Same-day cycles count as one day. For fleet units currently in
// maintenance, days-since-sent is computed against today when the sending
// event is inside the window, and left unknown otherwise.
func (m *MaintenanceReconciler) Reconcile(reports []*entity.ShiftReport, fleet []*entity.Equipment, today string) *ReconcileResult {
	result := &ReconcileResult{
		ClosedCycles:  []entity.MaintenanceCycle{},
		OpenEvents:    make(map[string]entity.OpenMaintenance),
		EquipmentDown: []entity.EquipmentDown{},
	}

	for _, report := range reports {
		if report.EquipmentSent {
			key := normalizePrefix(report.SentPrefix)
			if key != "" {
				result.OpenEvents[key] = entity.OpenMaintenance{
					Prefix:      key,
					EntryDate:   report.Date,
					EntryShift:  report.Shift,
					EntryLeader: report.Leader,
					Reason:      report.SentReason,
				}
			}
		}

		if report.EquipmentBack {
			key := normalizePrefix(report.ReturnedPrefix)
			if key == "" {
				continue
			}
			open, ok := result.OpenEvents[key]
			if !ok {
				m.logger.Debug("Return without matching send", "prefix", key, "date", report.Date)
				continue
			}

			elapsed := utils.CalendarDays(open.EntryDate, report.Date)
			if elapsed < 1 {
				elapsed = 1
			}
			result.ClosedCycles = append(result.ClosedCycles, entity.MaintenanceCycle{
				Prefix:      key,
				EntryDate:   open.EntryDate,
				EntryShift:  open.EntryShift,
				EntryLeader: open.EntryLeader,
				Reason:      open.Reason,
				ExitDate:    report.Date,
				ExitShift:   report.Shift,
				ExitLeader:  report.Leader,
				ElapsedDays: elapsed,
			})
			delete(result.OpenEvents, key)
		}
	}

	// newest exit first
	for i, j := 0, len(result.ClosedCycles)-1; i < j; i, j = i+1, j-1 {
		result.ClosedCycles[i], result.ClosedCycles[j] = result.ClosedCycles[j], result.ClosedCycles[i]
	}

	for _, unit := range fleet {
		if unit.Status != entity.StatusInMaintenance {
			continue
		}
		down := entity.EquipmentDown{
			Prefix: unit.Prefix,
			Name:   unit.Name,
		}
		if open, ok := result.OpenEvents[normalizePrefix(unit.Prefix)]; ok {
			days := utils.CalendarDays(open.EntryDate, today)
			down.DaysSinceSent = &days
		}
		result.EquipmentDown = append(result.EquipmentDown, down)
	}

	return result
}

// RankReliability counts closed maintenance cycles per equipment prefix and
// sorts most-repaired first. Ties break alphabetically by prefix.
func RankReliability(cycles []entity.MaintenanceCycle) []entity.ReliabilityRank {
	counts := make(map[string]int)
	for _, c := range cycles {
		counts[c.Prefix]++
	}

	ranking := make([]entity.ReliabilityRank, 0, len(counts))
	for prefix, n := range counts {
		ranking = append(ranking, entity.ReliabilityRank{Prefix: prefix, Cycles: n})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Cycles != ranking[j].Cycles {
			return ranking[i].Cycles > ranking[j].Cycles
		}
		return ranking[i].Prefix < ranking[j].Prefix
	})
	return ranking
}

// SummarizeFleet tallies the fleet snapshot by status. Unknown statuses are
// excluded, so Total is the sum of the three known buckets rather than the
// snapshot length.
func SummarizeFleet(fleet []*entity.Equipment) entity.FleetSummary {
	var s entity.FleetSummary
	for _, unit := range fleet {
		switch unit.Status {
		case entity.StatusOperational:
			s.Operational++
		case entity.StatusInMaintenance:
			s.InMaintenance++
		case entity.StatusRented:
			s.Rented++
		}
	}
	s.Total = s.Operational + s.InMaintenance + s.Rented
	return s
}
