package repository

import (
	"context"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UsernamesByIDs resolves display names for a set of profile ids. Missing
// profiles simply don't appear in the map; callers fall back to a
// placeholder name.
func (r *ProfileRepository) UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var profiles []domain.Profile
	err := r.db.WithContext(ctx).
		Where("profile_id IN ?", ids).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.ProfileID] = p.Username
	}
	return names, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, profileID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&domain.Profile{}).Error
}
