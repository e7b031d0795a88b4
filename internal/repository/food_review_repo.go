package repository

import (
	"context"
	"errors"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"gorm.io/gorm"
)

type FoodReviewRepository struct {
	db *gorm.DB
}

func NewFoodReviewRepository(db *gorm.DB) *FoodReviewRepository {
	return &FoodReviewRepository{db: db}
}

func (r *FoodReviewRepository) ListByFood(ctx context.Context, foodID string) ([]domain.FoodReview, error) {
	var reviews []domain.FoodReview
	err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// GetByFoodAndProfile returns the principal's own review of a food, or nil
// when they have not reviewed it yet.
func (r *FoodReviewRepository) GetByFoodAndProfile(ctx context.Context, foodID, profileID string) (*domain.FoodReview, error) {
	var review domain.FoodReview
	err := r.db.WithContext(ctx).
		Where("food_id = ? AND profile_id = ?", foodID, profileID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *FoodReviewRepository) Create(ctx context.Context, rv *domain.FoodReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *FoodReviewRepository) Update(ctx context.Context, id, profileID, text string, now time.Time) (*domain.FoodReview, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.FoodReview{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(map[string]interface{}{
			"review":     text,
			"updated_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var review domain.FoodReview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *FoodReviewRepository) Delete(ctx context.Context, id, profileID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&domain.FoodReview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FoodReviewRepository) DeleteByProfile(ctx context.Context, profileID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&domain.FoodReview{}).Error
}
