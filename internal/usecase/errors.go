package usecase

import "errors"

var (
	ErrInternal        = errors.New("internal error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidParent   = errors.New("parent must be a top-level skill")
	ErrInvalidCategory = errors.New("invalid category")
	ErrRatingNotFound  = errors.New("rating not found")
	ErrCheckerNotFound = errors.New("checker not found")
	ErrSessionNotFound = errors.New("session not found")
)
