package food

import "errors"

var (
	ErrEmptyName       = errors.New("food name cannot be empty")
	ErrEmptyFile       = errors.New("image file is empty")
	ErrImageTooLarge   = errors.New("image exceeds the maximum allowed size")
	ErrInvalidMimeType = errors.New("image type is not allowed")
	ErrNotFound        = errors.New("food not found")
	ErrEmptyReview     = errors.New("review text cannot be empty")
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("you already reviewed this food")
)
