package domain

import (
	"errors"
)

// Error values double as the client-facing error codes.
var (
	ErrMissingPlan      = errors.New("missing_plan")
	ErrInvalidPlan      = errors.New("invalid_plan")
	ErrMissingEmail     = errors.New("missing_email")
	ErrMissingCustomer  = errors.New("missing_customer")
	ErrMissingSignature = errors.New("missing_signature")
	ErrInvalidSignature = errors.New("invalid_signature")
)

var ErrNotConfigured = errors.New("stripe is not configured, set STRIPE_SECRET_KEY")
