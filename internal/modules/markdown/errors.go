package markdown

import "errors"

var (
	ErrEmptyTitle = errors.New("title cannot be empty")
	ErrEmptyBody  = errors.New("body cannot be empty")
	ErrNotFound   = errors.New("markdown not found")
)
