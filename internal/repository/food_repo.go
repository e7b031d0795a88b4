package repository

import (
	"context"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"gorm.io/gorm"
)

type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// ListAll returns every food item, newest first. The food board is global;
// only mutation is owner-scoped.
func (r *FoodRepository) ListAll(ctx context.Context) ([]domain.Food, error) {
	var foods []domain.Food
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) GetByID(ctx context.Context, id string) (*domain.Food, error) {
	var food domain.Food
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(ctx context.Context, f *domain.Food) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FoodRepository) Delete(ctx context.Context, id, profileID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&domain.Food{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FoodRepository) DeleteByProfile(ctx context.Context, profileID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&domain.Food{}).Error
}
