// Package common defines sentinel errors shared across the poscli layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Token lifecycle errors.
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthorizationLost  = errors.New("authorization lost")

	// Transport / backend errors.
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")
	ErrInternal    = errors.New("internal error")
)
