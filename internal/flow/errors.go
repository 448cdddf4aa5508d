package flow

import "errors"

var (
	ErrMalformedLink      = errors.New("malformed link")
	ErrMissingLink        = errors.New("missing link")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrSessionRejected    = errors.New("session rejected")
	ErrValidationFailed   = errors.New("validation failed")
	ErrRemoteCallFailed   = errors.New("remote call failed")
	ErrBusy               = errors.New("submission already in flight")
)
