package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names created by migrations/00001_init.sql.
const (
	constraintUsersPkey          = "users_pkey"
	constraintUsersUsernameKey   = "users_username_key"
	constraintObjectsPkey        = "objects_pkey"
	constraintUserFavouritesPkey = "user_favourites_pkey"
	constraintUserFavouritesFkey = "user_favourites_email_fkey"
)

// constraintErrors maps a violated constraint to the store error it means.
var constraintErrors = map[string]error{
	constraintUsersPkey:          ErrEmailAlreadyExists,
	constraintUsersUsernameKey:   ErrUsernameAlreadyExists,
	constraintObjectsPkey:        ErrObjectAlreadyExists,
	constraintUserFavouritesPkey: ErrFavouriteAlreadyExists,
	constraintUserFavouritesFkey: ErrUserNotFound,
}

// postgresError translates a driver error into a store error. Unique and
// foreign key violations on known constraints become the matching sentinel;
// everything else is wrapped in [ErrStoreUnavailable].
func postgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation:
			if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
				return mapped
			}
		}
	}

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
