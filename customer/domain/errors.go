package domain

import (
	"errors"
)

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrCustomerNotFound  = errors.New("customer not found")
)
