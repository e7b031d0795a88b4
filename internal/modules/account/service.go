package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/storage"
)

type ProfileDeleter interface {
	DeleteByProfile(ctx context.Context, profileID string) error
}

type ProfileRepositoryInterface interface {
	Delete(ctx context.Context, profileID string) error
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	store   storage.ObjectStore
	buckets []string

	// Table cleanups run in this order; children before parents.
	todos          ProfileDeleter
	pokemonReviews ProfileDeleter
	markdowns      ProfileDeleter
	foodReviews    ProfileDeleter
	foods          ProfileDeleter
	profiles       ProfileRepositoryInterface
	users          UserRepositoryInterface
}

func NewService(
	store storage.ObjectStore,
	buckets []string,
	todos, pokemonReviews, markdowns, foodReviews, foods ProfileDeleter,
	profiles ProfileRepositoryInterface,
	users UserRepositoryInterface,
) *Service {
	return &Service{
		store:          store,
		buckets:        buckets,
		todos:          todos,
		pokemonReviews: pokemonReviews,
		markdowns:      markdowns,
		foodReviews:    foodReviews,
		foods:          foods,
		profiles:       profiles,
		users:          users,
	}
}

// DeleteAccount removes everything the user owns: stored objects first,
// then table rows, then the auth record last so a partial failure never
// leaves a usable login pointing at half-deleted data. Bucket failures are
// recorded and skipped; any table failure aborts before the auth record.
func (s *Service) DeleteAccount(ctx context.Context, principalID, targetID string) (*CleanupReport, error) {
	if principalID != targetID {
		return nil, ErrForbidden
	}

	// A deleted account leaves its JWT cryptographically valid until
	// expiry; a repeat delete must fail as an auth problem, not start a
	// cleanup run against an already-empty store.
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserGone
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	report := &CleanupReport{UserID: targetID}

	for _, bucket := range s.buckets {
		report.add("bucket:"+bucket, s.emptyBucketPrefix(ctx, bucket, targetID))
	}

	tables := []struct {
		name string
		del  func(context.Context, string) error
	}{
		{"todos", s.todos.DeleteByProfile},
		{"pokemon_reviews", s.pokemonReviews.DeleteByProfile},
		{"markdowns", s.markdowns.DeleteByProfile},
		{"food_reviews", s.foodReviews.DeleteByProfile},
		{"foods", s.foods.DeleteByProfile},
		{"profiles", s.profiles.Delete},
	}
	for _, table := range tables {
		err := table.del(ctx, targetID)
		report.add("table:"+table.name, err)
		if err != nil {
			return report, fmt.Errorf("%w: delete %s: %v", ErrCleanupIncomplete, table.name, err)
		}
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		report.add("auth", err)
		return report, fmt.Errorf("%w: delete auth record: %v", ErrCleanupIncomplete, err)
	}
	report.add("auth", nil)
	report.Deleted = true

	return report, nil
}

func (s *Service) emptyBucketPrefix(ctx context.Context, bucket, profileID string) error {
	objects, err := s.store.List(ctx, bucket, profileID)
	if err != nil {
		return fmt.Errorf("list %s: %w", bucket, err)
	}
	if len(objects) == 0 {
		return nil
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		keys = append(keys, profileID+"/"+obj.Name)
	}
	if err := s.store.Remove(ctx, bucket, keys); err != nil {
		return fmt.Errorf("empty %s: %w", bucket, err)
	}
	return nil
}

func (r *CleanupReport) add(step string, err error) {
	outcome := StepOutcome{Step: step, OK: err == nil}
	if err != nil {
		outcome.Error = err.Error()
	}
	r.Steps = append(r.Steps, outcome)
}
