package domain

import (
	"errors"
)

var (
	ErrInvalidEventID   = errors.New("invalid event id")
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventTime = errors.New("invalid event time, expected RFC3339")
)
