package token

import "errors"

var (
	// ErrConfig indicates invalid or missing token configuration.
	ErrConfig = errors.New("token: invalid config")

	// ErrInvalidToken indicates a token that failed verification
	// (bad signature, expired, wrong issuer, or missing claims).
	ErrInvalidToken = errors.New("token: invalid token")
)
