package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail     = errors.New("email is required")
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyFirstName = errors.New("first name is required")
	ErrEmptyLastName  = errors.New("last name is required")

	ErrInvalidNGC         = errors.New("ngc must be a positive integer")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyType          = errors.New("type is required")
	ErrEmptyConstellation = errors.New("constellation is required")
	ErrEmptyCollection    = errors.New("collection is required")
	ErrMissingRA          = errors.New("ra is required")
	ErrMissingDec         = errors.New("dec is required")
	ErrMissingMagnitude   = errors.New("magnitude is required")

	// ErrNumberOutOfRange is wrapped with the name of the offending field.
	ErrNumberOutOfRange = errors.New("number is outside the supported range")
)
