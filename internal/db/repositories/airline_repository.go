package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"digiboard/api/internal/constants"
	gormModels "digiboard/api/internal/models/gorm"
)

// AirlineRepository handles airlines table operations
type AirlineRepository struct {
	db *gorm.DB
}

// NewAirlineRepository creates a new airline repository
func NewAirlineRepository(db *gorm.DB) *AirlineRepository {
	return &AirlineRepository{db: db}
}

// List returns a page of airlines matching the query, plus the unpaged total.
// Search covers name and code; unknown sort fields are ignored.
func (r *AirlineRepository) List(ctx context.Context, q ListQuery) ([]gormModels.Airline, int64, error) {
	q = q.Normalized(constants.DefaultPerPage)

	tx := r.db.WithContext(ctx).Model(&gormModels.Airline{})
	if q.Search != "" {
		term := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR code LIKE ?", term, term)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count airlines: %w", err)
	}

	if constants.AirlineSortFields[q.SortBy] {
		tx = tx.Order(q.SortBy + " " + SortDir(q.SortDirection))
	}

	var airlines []gormModels.Airline
	err := tx.Offset(q.Offset()).Limit(q.PerPage).Find(&airlines).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list airlines: %w", err)
	}
	return airlines, total, nil
}

func (r *AirlineRepository) FindByID(ctx context.Context, id uint) (*gormModels.Airline, error) {
	var airline gormModels.Airline
	err := r.db.WithContext(ctx).First(&airline, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch airline: %w", err)
	}
	return &airline, nil
}

func (r *AirlineRepository) Create(ctx context.Context, airline *gormModels.Airline) error {
	return r.db.WithContext(ctx).Create(airline).Error
}

func (r *AirlineRepository) Update(ctx context.Context, airline *gormModels.Airline) error {
	return r.db.WithContext(ctx).Save(airline).Error
}

// Delete removes the airline and every flight referencing it. The explicit
// flight delete keeps the cascade working on dialects where the FK
// constraint is not enforced (the in-memory sqlite used in tests).
func (r *AirlineRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("airline_id = ?", id).Delete(&gormModels.Flight{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gormModels.Airline{}, id).Error
	})
}

// CodeExists reports whether another airline already uses the code. The
// excludeID carve-out keeps updates from tripping over the record itself.
func (r *AirlineRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Airline{}).
		Where("code = ? AND id <> ?", code, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Count returns total number of airlines
func (r *AirlineRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Airline{}).Count(&count).Error
	return count, err
}
