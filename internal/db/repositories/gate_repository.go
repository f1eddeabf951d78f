package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"digiboard/api/internal/constants"
	gormModels "digiboard/api/internal/models/gorm"
)

// GateRepository handles gates table operations
type GateRepository struct {
	db *gorm.DB
}

// NewGateRepository creates a new gate repository
func NewGateRepository(db *gorm.DB) *GateRepository {
	return &GateRepository{db: db}
}

func (r *GateRepository) List(ctx context.Context, q ListQuery) ([]gormModels.Gate, int64, error) {
	q = q.Normalized(constants.DefaultPerPage)

	tx := r.db.WithContext(ctx).Model(&gormModels.Gate{})
	if q.Search != "" {
		tx = tx.Where("code LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count gates: %w", err)
	}

	if constants.GateSortFields[q.SortBy] {
		tx = tx.Order(q.SortBy + " " + SortDir(q.SortDirection))
	}

	var gates []gormModels.Gate
	err := tx.Offset(q.Offset()).Limit(q.PerPage).Find(&gates).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list gates: %w", err)
	}
	return gates, total, nil
}

func (r *GateRepository) FindByID(ctx context.Context, id uint) (*gormModels.Gate, error) {
	var gate gormModels.Gate
	err := r.db.WithContext(ctx).First(&gate, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch gate: %w", err)
	}
	return &gate, nil
}

func (r *GateRepository) Create(ctx context.Context, gate *gormModels.Gate) error {
	return r.db.WithContext(ctx).Create(gate).Error
}

func (r *GateRepository) Update(ctx context.Context, gate *gormModels.Gate) error {
	return r.db.WithContext(ctx).Save(gate).Error
}

// Delete removes the gate and every flight assigned to it.
func (r *GateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gate_id = ?", id).Delete(&gormModels.Flight{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gormModels.Gate{}, id).Error
	})
}

func (r *GateRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Gate{}).
		Where("code = ? AND id <> ?", code, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Count returns total number of gates
func (r *GateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Gate{}).Count(&count).Error
	return count, err
}
