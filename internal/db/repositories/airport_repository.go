package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"digiboard/api/internal/constants"
	gormModels "digiboard/api/internal/models/gorm"
)

// AirportRepository handles airports table operations
type AirportRepository struct {
	db *gorm.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gorm.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// List returns a page of airports. Search covers name, code and city.
func (r *AirportRepository) List(ctx context.Context, q ListQuery) ([]gormModels.Airport, int64, error) {
	q = q.Normalized(constants.DefaultPerPage)

	tx := r.db.WithContext(ctx).Model(&gormModels.Airport{})
	if q.Search != "" {
		term := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR code LIKE ? OR city LIKE ?", term, term, term)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count airports: %w", err)
	}

	if constants.AirportSortFields[q.SortBy] {
		tx = tx.Order(q.SortBy + " " + SortDir(q.SortDirection))
	}

	var airports []gormModels.Airport
	err := tx.Offset(q.Offset()).Limit(q.PerPage).Find(&airports).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list airports: %w", err)
	}
	return airports, total, nil
}

func (r *AirportRepository) FindByID(ctx context.Context, id uint) (*gormModels.Airport, error) {
	var airport gormModels.Airport
	err := r.db.WithContext(ctx).First(&airport, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}
	return &airport, nil
}

func (r *AirportRepository) Create(ctx context.Context, airport *gormModels.Airport) error {
	return r.db.WithContext(ctx).Create(airport).Error
}

func (r *AirportRepository) Update(ctx context.Context, airport *gormModels.Airport) error {
	return r.db.WithContext(ctx).Save(airport).Error
}

// Delete removes the airport together with flights bound to it as a
// destination.
func (r *AirportRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_airport_id = ?", id).Delete(&gormModels.Flight{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gormModels.Airport{}, id).Error
	})
}

func (r *AirportRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Airport{}).
		Where("code = ? AND id <> ?", code, excludeID).
		Count(&count).Error
	return count > 0, err
}
