package repository

import (
	"context"

	"rampcontrol-service/internal/domain/entity"
)

// EquipmentRepository defines the interface for fleet snapshot operations
type EquipmentRepository interface {
	// List returns the full fleet snapshot ordered by prefix.
	List(ctx context.Context) ([]*entity.Equipment, error)

	// UpdateStatusByPrefix sets the status of the unit with the exact
	// prefix. Returns the number of rows touched so callers can surface
	// prefixes that matched nothing.
	UpdateStatusByPrefix(ctx context.Context, prefix, status string) (int64, error)
}

// LeaderRepository defines the interface for shift leader lookups
type LeaderRepository interface {
	List(ctx context.Context) ([]*entity.Leader, error)
}
