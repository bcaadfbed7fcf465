package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Accounts live in "users"; favourites are rows of "user_favourites" ordered
// by their insertion position.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account. The primary key on email and the unique
// constraint on username make the insert the only uniqueness check needed.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return postgresError(err)
	}

	return nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "username", username)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("error building query: %w", err)
	}

	var (
		user       models.User
		password   sql.NullString
		profilePic sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.Email,
		&user.Username,
		&password,
		&user.FirstName,
		&user.LastName,
		&user.IsGoogle,
		&profilePic,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("column", column).Msg("error selecting user")
		return models.User{}, postgresError(err)
	}
	user.Password = password.String
	user.ProfilePic = profilePic.String

	user.Favourites, err = r.favourites(ctx, user.Email)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) favourites(ctx context.Context, email string) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavouritesQuery(email)
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.favourites").Msg("error selecting favourites")
		return nil, postgresError(err)
	}
	defer rows.Close()

	var favourites []int64
	for rows.Next() {
		var ngc int64
		if err = rows.Scan(&ngc); err != nil {
			return nil, postgresError(err)
		}
		favourites = append(favourites, ngc)
	}
	if err = rows.Err(); err != nil {
		return nil, postgresError(err)
	}

	return favourites, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, email, username, profilePic string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(email, username, profilePic)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating user")
		return postgresError(err)
	}

	return requireAffected(result, ErrUserNotFound)
}

// DeleteUser removes the account; favourites go with it through ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(email)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return postgresError(err)
	}

	return requireAffected(result, ErrUserNotFound)
}

// AddFavourite inserts the (email, ngc) pair. A missing user trips the
// foreign key and a duplicate trips the primary key.
func (r *userRepository) AddFavourite(ctx context.Context, email string, ngc int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFavouriteQuery(email, ngc)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.AddFavourite").Msg("error inserting favourite")
		return postgresError(err)
	}

	return nil
}

func (r *userRepository) RemoveFavourite(ctx context.Context, email string, ngc int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFavouriteQuery(email, ngc)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveFavourite").Msg("error deleting favourite")
		return postgresError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return postgresError(err)
	}
	if affected > 0 {
		return nil
	}

	// nothing deleted: tell a missing user apart from a missing entry
	query, args, err = buildUserExistsQuery(email)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return postgresError(err)
	}
	if !exists {
		return ErrUserNotFound
	}

	return ErrFavouriteNotFound
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return postgresError(err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
