package repository

import (
	"context"

	"rampcontrol-service/internal/domain/entity"
)

// ReportRepository defines the interface for shift report operations
type ReportRepository interface {
	// FindLatestByDateShift returns the authoritative report for a
	// (date, shift) pair: the most recently created match, flights
	// included. Returns (nil, nil) when no report exists.
	FindLatestByDateShift(ctx context.Context, date string, shift entity.Shift) (*entity.ShiftReport, error)

	// FindByDateRange returns all reports in [start, end] ascending by
	// date then creation time, flights included. An empty shift means no
	// shift filter.
	FindByDateRange(ctx context.Context, start, end string, shift entity.Shift) ([]*entity.ShiftReport, error)

	// Create persists a report together with its flight rows.
	Create(ctx context.Context, report *entity.ShiftReport) error
}
