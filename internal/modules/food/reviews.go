package food

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/pkg/listx"
	"github.com/1Deeeeyl/multiple-activities/internal/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const unknownUser = "Unknown User"

// ListReviews returns the food's reviews with usernames joined in, sorted
// by date (newest first) or by username (case-folded).
func (s *Service) ListReviews(ctx context.Context, foodID string, sortBy ReviewSort) ([]domain.FoodReview, error) {
	if _, err := s.Get(ctx, foodID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByFood(ctx, foodID)
	if err != nil {
		return nil, err
	}

	if err := s.attachUsernames(ctx, reviews); err != nil {
		return nil, err
	}

	switch sortBy {
	case SortByUsername:
		reviews = listx.SortByNameFold(reviews, func(r domain.FoodReview) string { return r.Username })
	default:
		reviews = listx.SortByNewest(reviews, func(r domain.FoodReview) time.Time { return r.CreatedAt })
	}

	return reviews, nil
}

// CreateReview inserts the principal's review; one per user per food.
func (s *Service) CreateReview(ctx context.Context, profileID, foodID string, req CreateReviewRequest) (*domain.FoodReview, error) {
	text := strings.TrimSpace(req.Review)
	if text == "" {
		return nil, ErrEmptyReview
	}

	if _, err := s.Get(ctx, foodID); err != nil {
		return nil, err
	}

	existing, err := s.reviews.GetByFoodAndProfile(ctx, foodID, profileID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	rv := &domain.FoodReview{
		ID:        uuid.New().String(),
		FoodID:    foodID,
		ProfileID: profileID,
		Review:    text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	if err := s.attachUsername(ctx, rv); err != nil {
		return nil, err
	}

	s.publish(profileID, "food_reviews", realtime.EventInsert, rv)
	return rv, nil
}

func (s *Service) UpdateReview(ctx context.Context, profileID, reviewID string, req UpdateReviewRequest) (*domain.FoodReview, error) {
	text := strings.TrimSpace(req.Review)
	if text == "" {
		return nil, ErrEmptyReview
	}

	rv, err := s.reviews.Update(ctx, reviewID, profileID, text, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if err := s.attachUsername(ctx, rv); err != nil {
		return nil, err
	}

	s.publish(profileID, "food_reviews", realtime.EventUpdate, rv)
	return rv, nil
}

func (s *Service) DeleteReview(ctx context.Context, profileID, reviewID string) error {
	if err := s.reviews.Delete(ctx, reviewID, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	s.publish(profileID, "food_reviews", realtime.EventDelete, map[string]string{"id": reviewID})
	return nil
}

func (s *Service) attachUsernames(ctx context.Context, reviews []domain.FoodReview) error {
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ProfileID)
	}

	names, err := s.profiles.UsernamesByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range reviews {
		if name, ok := names[reviews[i].ProfileID]; ok {
			reviews[i].Username = name
		} else {
			reviews[i].Username = unknownUser
		}
	}
	return nil
}

func (s *Service) attachUsername(ctx context.Context, rv *domain.FoodReview) error {
	names, err := s.profiles.UsernamesByIDs(ctx, []string{rv.ProfileID})
	if err != nil {
		return err
	}
	if name, ok := names[rv.ProfileID]; ok {
		rv.Username = name
	} else {
		rv.Username = unknownUser
	}
	return nil
}
