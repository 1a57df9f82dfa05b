package session

import "errors"

var (
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrNoActiveSession     = errors.New("no active session")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotActive    = errors.New("session is not in progress")
	ErrSetNotFound         = errors.New("session set not found")
	ErrSetNotPending       = errors.New("session set already completed or skipped")
	ErrForbidden           = errors.New("session belongs to another user")
	ErrDayIndexOutOfRange  = errors.New("day index out of range")
	ErrInvalidSetResult    = errors.New("invalid set result")
)
