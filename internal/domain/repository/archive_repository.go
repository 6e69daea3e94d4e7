package repository

import (
	"context"

	"rampcontrol-service/internal/domain/entity"
)

// ArchiveRepository defines the interface for the submitted-report audit log
type ArchiveRepository interface {
	Save(ctx context.Context, archive *entity.ReportArchive) error

	// FindByReportID returns (nil, nil) when no document exists.
	FindByReportID(ctx context.Context, reportID string) (*entity.ReportArchive, error)

	// FindRecent returns the newest documents by submission time.
	FindRecent(ctx context.Context, limit int) ([]*entity.ReportArchive, error)
}

// WhatsappRepository defines the interface for handover message dispatch
type WhatsappRepository interface {
	SendHandover(ctx context.Context, payload *entity.HandoverPayload) (string, error)
}
