package service

import (
	"errors"

	"github.com/MKhiriev/shelfsync/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to data of a different user")

	ErrValidationNoUserID             = errors.New("no user ID was given")
	ErrValidationNoDeviceID           = validators.ErrNoDeviceID
	ErrValidationNegativeVersion      = validators.ErrNegativeVersion
	ErrValidationInvalidTimestamp     = validators.ErrInvalidTimestamp
	ErrValidationInvalidChallengeGoal = validators.ErrNegativeChallengeGoal
)

// Client side.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrServerOffline    = errors.New("server is not configured")
	ErrNoSavedSession   = errors.New("no saved session")
)
