package domain

import "errors"

var (
	ErrInvalidTaskInput = errors.New("invalid task input")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
)
