package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user record has the requested email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a conditional put fails because a
	// record with the same email is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when the username marker for a new
	// or changed username is already held by another account.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserModified is returned when a record changed between the read and
	// the conditional write of a profile update or delete.
	ErrUserModified = errors.New("user was modified concurrently")

	// ErrObjectNotFound is returned when no catalog object has the requested NGC.
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectAlreadyExists is returned when a conditional put fails because
	// the NGC is already taken.
	ErrObjectAlreadyExists = errors.New("object with this NGC already exists")

	// ErrFavouriteAlreadyExists is returned when the NGC is already in the
	// user's favourites.
	ErrFavouriteAlreadyExists = errors.New("favourite already exists")

	// ErrFavouriteNotFound is returned when the NGC is not in the user's
	// favourites.
	ErrFavouriteNotFound = errors.New("favourite not found")

	// ErrFavouritesModified is returned when the favourites list changed
	// between the read and the conditional removal.
	ErrFavouritesModified = errors.New("favourites were modified concurrently")
)

// ErrStoreUnavailable wraps every backend failure that is not one of the
// domain conditions above (network errors, throttling, driver errors).
var ErrStoreUnavailable = errors.New("store call failed")

// ErrUnknownBackend is returned by [NewStorages] for an unsupported backend.
var ErrUnknownBackend = errors.New("unknown storage backend")
