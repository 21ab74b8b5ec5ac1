package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDuplicateInterest = errors.New("interest already recorded for this student and professor")
)
