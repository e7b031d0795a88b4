package todo

import "errors"

var (
	ErrEmptyTask       = errors.New("task text cannot be empty")
	ErrInvalidPriority = errors.New("unknown priority")
	ErrNotFound        = errors.New("todo not found")
)
