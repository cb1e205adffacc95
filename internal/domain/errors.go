package domain

import "errors"

var (
	ErrMissingThreshold     = errors.New("missing idle threshold")
	ErrInvalidTimestamp     = errors.New("invalid activity timestamp")
	ErrIdentityUnavailable  = errors.New("app identity unavailable")
	ErrInspectorUnavailable = errors.New("jupyter server unavailable")
	ErrTerminationFailed    = errors.New("app termination failed")
)
