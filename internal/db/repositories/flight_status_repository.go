package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"digiboard/api/internal/constants"
	gormModels "digiboard/api/internal/models/gorm"
)

// FlightStatusRepository handles flight_statuses table operations
type FlightStatusRepository struct {
	db *gorm.DB
}

// NewFlightStatusRepository creates a new flight status repository
func NewFlightStatusRepository(db *gorm.DB) *FlightStatusRepository {
	return &FlightStatusRepository{db: db}
}

func (r *FlightStatusRepository) List(ctx context.Context, q ListQuery) ([]gormModels.FlightStatus, int64, error) {
	q = q.Normalized(constants.DefaultPerPage)

	tx := r.db.WithContext(ctx).Model(&gormModels.FlightStatus{})
	if q.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count flight statuses: %w", err)
	}

	if constants.StatusSortFields[q.SortBy] {
		tx = tx.Order(q.SortBy + " " + SortDir(q.SortDirection))
	}

	var statuses []gormModels.FlightStatus
	err := tx.Offset(q.Offset()).Limit(q.PerPage).Find(&statuses).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list flight statuses: %w", err)
	}
	return statuses, total, nil
}

func (r *FlightStatusRepository) FindByID(ctx context.Context, id uint) (*gormModels.FlightStatus, error) {
	var status gormModels.FlightStatus
	err := r.db.WithContext(ctx).First(&status, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch flight status: %w", err)
	}
	return &status, nil
}

func (r *FlightStatusRepository) Create(ctx context.Context, status *gormModels.FlightStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *FlightStatusRepository) Update(ctx context.Context, status *gormModels.FlightStatus) error {
	return r.db.WithContext(ctx).Save(status).Error
}

// Delete removes the status and every flight carrying it.
func (r *FlightStatusRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("status_id = ?", id).Delete(&gormModels.Flight{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gormModels.FlightStatus{}, id).Error
	})
}

func (r *FlightStatusRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.FlightStatus{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}
