package catalog

import "errors"

var (
	ErrInvalidSeed            = errors.New("invalid catalog seed")
	ErrRestrictionRuleUnknown = errors.New("restriction rule not found")
	ErrMuscleFocusUnknown     = errors.New("muscle focus not found")
)
