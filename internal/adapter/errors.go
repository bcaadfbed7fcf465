package adapter

import "errors"

var (
	ErrEmptyToken      = errors.New("empty access token")
	ErrTokenRejected   = errors.New("access token rejected by identity provider")
	ErrProviderFailure = errors.New("identity provider unavailable")
)
