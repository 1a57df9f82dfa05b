package plan

import "errors"

var (
	ErrIncompleteProfile = errors.New("incomplete profile")
	ErrPlanNotFound      = errors.New("workout plan not found")
)
