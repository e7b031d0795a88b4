package auth

import (
	"context"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileRepositoryInterface — the profile row is created at signup so the
// username join always resolves
type ProfileRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, profileID string) (*domain.Profile, error)
}
