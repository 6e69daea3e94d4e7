package repository

import (
	"context"
	"time"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormLeaderRepository implements the LeaderRepository interface
type GormLeaderRepository struct {
	db *gorm.DB
}

// NewGormLeaderRepository creates a new GORM leader repository
func NewGormLeaderRepository(db *gorm.DB) repository.LeaderRepository {
	return &GormLeaderRepository{
		db: db,
	}
}

// Lider GORM model for database mapping
type Lider struct {
	ID       uint      `gorm:"column:id;primaryKey"`
	Nome     string    `gorm:"column:nome;unique"`
	CriadoEm time.Time `gorm:"column:criado_em"`
}

// TableName overrides the default table name
func (Lider) TableName() string {
	return "lideres"
}

// List returns all leaders ordered by name
func (r *GormLeaderRepository) List(ctx context.Context) ([]*entity.Leader, error) {
	var rows []Lider
	result := r.db.WithContext(ctx).Order("nome ASC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	leaders := make([]*entity.Leader, 0, len(rows))
	for i := range rows {
		leaders = append(leaders, &entity.Leader{
			ID:        rows[i].ID,
			Name:      rows[i].Nome,
			CreatedAt: rows[i].CriadoEm,
		})
	}
	return leaders, nil
}
