package domain

import (
	"errors"
)

var (
	ErrInvalidVenueID = errors.New("invalid venue id")
	ErrVenueNotFound  = errors.New("venue not found")
)
