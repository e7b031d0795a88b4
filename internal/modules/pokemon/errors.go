package pokemon

import "errors"

var (
	ErrInvalidPage     = errors.New("page must be a positive number")
	ErrEmptyReview     = errors.New("review text cannot be empty")
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("pokemon already reviewed by this user")
)
