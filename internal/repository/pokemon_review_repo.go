package repository

import (
	"context"
	"errors"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"gorm.io/gorm"
)

type PokemonReviewRepository struct {
	db *gorm.DB
}

func NewPokemonReviewRepository(db *gorm.DB) *PokemonReviewRepository {
	return &PokemonReviewRepository{db: db}
}

func (r *PokemonReviewRepository) ListByPokemon(ctx context.Context, pokemonID int) ([]domain.PokemonReview, error) {
	var reviews []domain.PokemonReview
	err := r.db.WithContext(ctx).
		Where("pokemon_id = ?", pokemonID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *PokemonReviewRepository) GetByPokemonAndProfile(ctx context.Context, pokemonID int, profileID string) (*domain.PokemonReview, error) {
	var review domain.PokemonReview
	err := r.db.WithContext(ctx).
		Where("pokemon_id = ? AND profile_id = ?", pokemonID, profileID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *PokemonReviewRepository) Create(ctx context.Context, rv *domain.PokemonReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *PokemonReviewRepository) Update(ctx context.Context, id, profileID, text string, now time.Time) (*domain.PokemonReview, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.PokemonReview{}).
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

	var review domain.PokemonReview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *PokemonReviewRepository) Delete(ctx context.Context, id, profileID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&domain.PokemonReview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PokemonReviewRepository) DeleteByProfile(ctx context.Context, profileID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&domain.PokemonReview{}).Error
}
