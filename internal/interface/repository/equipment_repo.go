package repository

import (
	"context"
	"time"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormEquipmentRepository implements the EquipmentRepository interface
type GormEquipmentRepository struct {
	db *gorm.DB
}

// NewGormEquipmentRepository creates a new GORM equipment repository
func NewGormEquipmentRepository(db *gorm.DB) repository.EquipmentRepository {
	return &GormEquipmentRepository{
		db: db,
	}
}

// Equipamento GORM model for database mapping
type Equipamento struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Prefixo      string    `gorm:"column:prefixo;unique"`
	Nome         string    `gorm:"column:nome"`
	Status       string    `gorm:"column:status"`
	CriadoEm     time.Time `gorm:"column:criado_em"`
	AtualizadoEm time.Time `gorm:"column:atualizado_em"`
}

// TableName overrides the default table name
func (Equipamento) TableName() string {
	return "equipamentos"
}

// List returns the full fleet snapshot ordered by prefix
func (r *GormEquipmentRepository) List(ctx context.Context) ([]*entity.Equipment, error) {
	var rows []Equipamento
	result := r.db.WithContext(ctx).Order("prefixo ASC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	fleet := make([]*entity.Equipment, 0, len(rows))
	for i := range rows {
		fleet = append(fleet, &entity.Equipment{
			ID:        rows[i].ID,
			Prefix:    rows[i].Prefixo,
			Name:      rows[i].Nome,
			Status:    rows[i].Status,
			CreatedAt: rows[i].CriadoEm,
			UpdatedAt: rows[i].AtualizadoEm,
		})
	}
	return fleet, nil
}

// UpdateStatusByPrefix sets the status of the unit with the exact prefix
func (r *GormEquipmentRepository) UpdateStatusByPrefix(ctx context.Context, prefix, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Equipamento{}).
		Where("prefixo = ?", prefix).
		Updates(map[string]interface{}{
			"status":        status,
			"atualizado_em": time.Now(),
		})
	return result.RowsAffected, result.Error
}
