package domain

import (
	"errors"
)

// SigningRequest is the provider-native representation of an e-signature
// request. Payloads are passed through untyped, the provider owns the schema.
type SigningRequest = map[string]interface{}

// Template is a provider-native signing template description.
type Template = map[string]interface{}

var (
	ErrNotConfigured      = errors.New("firma is not configured, set FIRMA_BASE_URL and FIRMA_API_KEY")
	ErrSigningRequestSend = errors.New("firma signing request send failed")
	ErrTemplatesFetch     = errors.New("firma templates fetch failed")
)
