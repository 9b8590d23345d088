package domain

import (
	"errors"
)

// Error messages double as the machine-readable error codes the web
// client matches on.
var (
	ErrMissingOwnerID    = errors.New("missing_ownerId")
	ErrMissingContractID = errors.New("missing_id")
	ErrContractNotFound  = errors.New("not_found")
	ErrFirmaSendFailed   = errors.New("firma_send_failed")
)

// SendError carries the provider-side signing request snapshot gathered
// before a failed send, so the client can show what was about to go out.
type SendError struct {
	Err            error
	SigningRequest map[string]interface{}
}

func (e *SendError) Error() string {
	return ErrFirmaSendFailed.Error()
}

func (e *SendError) Unwrap() error {
	return ErrFirmaSendFailed
}

func NewSendError(err error, signingRequest map[string]interface{}) error {
	if signingRequest == nil {
		signingRequest = map[string]interface{}{}
	}

	return &SendError{Err: err, SigningRequest: signingRequest}
}
