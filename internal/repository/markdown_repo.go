package repository

import (
	"context"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"gorm.io/gorm"
)

type MarkdownRepository struct {
	db *gorm.DB
}

func NewMarkdownRepository(db *gorm.DB) *MarkdownRepository {
	return &MarkdownRepository{db: db}
}

func (r *MarkdownRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Markdown, error) {
	var notes []domain.Markdown
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *MarkdownRepository) GetByID(ctx context.Context, id, profileID string) (*domain.Markdown, error) {
	var note domain.Markdown
	err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *MarkdownRepository) Create(ctx context.Context, m *domain.Markdown) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MarkdownRepository) Update(ctx context.Context, id, profileID, title, body string, now time.Time) (*domain.Markdown, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Markdown{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(map[string]interface{}{
			"title":      title,
			"body":       body,
			"updated_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id, profileID)
}

func (r *MarkdownRepository) Delete(ctx context.Context, id, profileID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&domain.Markdown{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MarkdownRepository) DeleteByProfile(ctx context.Context, profileID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&domain.Markdown{}).Error
}
