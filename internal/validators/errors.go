package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoDeviceID            = errors.New("snapshot has no device ID")
	ErrNegativeVersion       = errors.New("snapshot version is negative")
	ErrInvalidTimestamp      = errors.New("snapshot timestamp is not positive")
	ErrNegativeChallengeGoal = errors.New("challenge goal is negative")
)
