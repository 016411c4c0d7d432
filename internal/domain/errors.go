package domain

import "errors"

var (
	ErrProviderNotRegistered = errors.New("copy provider not registered")
	ErrProviderRequired      = errors.New("copy provider required")
	ErrProviderFailure       = errors.New("copy provider failure")
)
