package service

import (
	"errors"

	"github.com/MKhiriev/go-leave-tracker/internal/validators"
)

var (
	// ErrInvalidDataProvided is the sentinel every validation failure unwraps
	// to, including *validators.ValidationError.
	ErrInvalidDataProvided = validators.ErrInvalidDataProvided

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnauthorized is returned by operations that need a signed-in session.
	ErrUnauthorized = errors.New("sign in required")
)
