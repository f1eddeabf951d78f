package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"digiboard/api/internal/constants"
	gormModels "digiboard/api/internal/models/gorm"
)

// UserRepository handles users table operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns a page of users. Search covers name and email.
func (r *UserRepository) List(ctx context.Context, q ListQuery) ([]gormModels.User, int64, error) {
	q = q.Normalized(constants.DefaultPerPage)

	tx := r.db.WithContext(ctx).Model(&gormModels.User{})
	if q.Search != "" {
		term := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", term, term)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if constants.UserSortFields[q.SortBy] {
		tx = tx.Order(q.SortBy + " " + SortDir(q.SortDirection))
	}

	var users []gormModels.User
	err := tx.Offset(q.Offset()).Limit(q.PerPage).Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*gormModels.User, error) {
	var user gormModels.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *gormModels.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Update(ctx context.Context, user *gormModels.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes the user and the flights they manage.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&gormModels.Flight{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gormModels.User{}, id).Error
	})
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}
