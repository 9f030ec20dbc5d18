package domain

import "errors"

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrInvalidPriority = errors.New("invalid priority")
)
