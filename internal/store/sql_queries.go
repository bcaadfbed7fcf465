package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/beyond-catalog/models"
)

const (
	usersTable          = "users"
	userFavouritesTable = "user_favourites"
	objectsTable        = "objects"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	userColumns = []string{
		"email",
		"username",
		"password",
		"first_name",
		"last_name",
		"is_google",
		"profile_pic",
	}

	objectColumns = []string{
		"ngc",
		"name",
		"type",
		"constellation",
		"ra",
		"dec",
		"magnitude",
		"collection",
	}
)

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.Email,
			user.Username,
			nullString(user.Password),
			user.FirstName,
			user.LastName,
			user.IsGoogle,
			nullString(user.ProfilePic),
		).
		ToSql()
}

// buildSelectUserQuery selects one user by a unique column ("email" or "username").
func buildSelectUserQuery(column, value string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildSelectFavouritesQuery(email string) (string, []any, error) {
	return psql.Select("ngc").
		From(userFavouritesTable).
		Where(sq.Eq{"email": email}).
		OrderBy("position").
		ToSql()
}

func buildUpdateProfileQuery(email, username, profilePic string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("username", username).
		Set("profile_pic", nullString(profilePic)).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildDeleteUserQuery(email string) (string, []any, error) {
	return psql.Delete(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildUserExistsQuery(email string) (string, []any, error) {
	exists := psql.Select("1").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Prefix("SELECT EXISTS (").
		Suffix(")")
	return exists.ToSql()
}

func buildInsertFavouriteQuery(email string, ngc int64) (string, []any, error) {
	return psql.Insert(userFavouritesTable).
		Columns("email", "ngc").
		Values(email, ngc).
		ToSql()
}

func buildDeleteFavouriteQuery(email string, ngc int64) (string, []any, error) {
	return psql.Delete(userFavouritesTable).
		Where(sq.Eq{"email": email, "ngc": ngc}).
		ToSql()
}

func buildInsertObjectQuery(object models.CatalogObject) (string, []any, error) {
	return psql.Insert(objectsTable).
		Columns(objectColumns...).
		Values(
			object.NGC,
			object.Name,
			object.Type,
			object.Constellation,
			object.RA.String(),
			object.Dec.String(),
			object.Magnitude.String(),
			object.Collection,
		).
		ToSql()
}

func buildSelectObjectQuery(ngc int64) (string, []any, error) {
	return psql.Select(objectColumns...).
		From(objectsTable).
		Where(sq.Eq{"ngc": ngc}).
		ToSql()
}

func buildSelectAllObjectsQuery() (string, []any, error) {
	return psql.Select(objectColumns...).
		From(objectsTable).
		OrderBy("ngc").
		ToSql()
}

func buildDeleteObjectQuery(ngc int64) (string, []any, error) {
	return psql.Delete(objectsTable).
		Where(sq.Eq{"ngc": ngc}).
		ToSql()
}
