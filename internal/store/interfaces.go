package store

import (
	"context"

	"github.com/MKhiriev/beyond-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user records keyed by email, with a unique
// secondary key on username.
type UserRepository interface {
	// CreateUser stores a new record. It fails with [ErrEmailAlreadyExists] or
	// [ErrUsernameAlreadyExists] when either key is taken; the check and the
	// write are a single conditional operation.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByEmail returns the record or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUsername returns the record holding username or [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateProfile sets username and profile picture of an existing record.
	// A username change is atomic with the uniqueness check and fails with
	// [ErrUsernameAlreadyExists] without writing anything.
	UpdateProfile(ctx context.Context, email, username, profilePic string) error

	// DeleteUser removes the record and releases its username, or returns
	// [ErrUserNotFound].
	DeleteUser(ctx context.Context, email string) error

	// AddFavourite appends ngc to the user's favourites. It fails with
	// [ErrUserNotFound] or [ErrFavouriteAlreadyExists].
	AddFavourite(ctx context.Context, email string, ngc int64) error

	// RemoveFavourite removes ngc from the user's favourites. It fails with
	// [ErrUserNotFound], [ErrFavouriteNotFound] or [ErrFavouritesModified].
	RemoveFavourite(ctx context.Context, email string, ngc int64) error
}

// ObjectRepository persists catalog objects keyed by NGC.
type ObjectRepository interface {
	// CreateObject stores a new object or fails with [ErrObjectAlreadyExists].
	CreateObject(ctx context.Context, object models.CatalogObject) error

	// FindObject returns the object or [ErrObjectNotFound].
	FindObject(ctx context.Context, ngc int64) (models.CatalogObject, error)

	// ListObjects returns every stored object ordered by NGC.
	ListObjects(ctx context.Context) ([]models.CatalogObject, error)

	// DeleteObject removes the object or returns [ErrObjectNotFound].
	DeleteObject(ctx context.Context, ngc int64) error
}
