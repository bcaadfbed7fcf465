package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/models"
)

// objectRepository is the PostgreSQL-backed implementation of [ObjectRepository].
type objectRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewObjectRepository(db *DB, logger *logger.Logger) ObjectRepository {
	logger.Debug().Msg("creating object repository")
	return &objectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *objectRepository) CreateObject(ctx context.Context, object models.CatalogObject) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertObjectQuery(object)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*objectRepository.CreateObject").Int64("ngc", object.NGC).Msg("error inserting object")
		return postgresError(err)
	}

	return nil
}

func (r *objectRepository) FindObject(ctx context.Context, ngc int64) (models.CatalogObject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectObjectQuery(ngc)
	if err != nil {
		return models.CatalogObject{}, fmt.Errorf("error building query: %w", err)
	}

	object, err := scanObject(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatalogObject{}, ErrObjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*objectRepository.FindObject").Int64("ngc", ngc).Msg("error selecting object")
		return models.CatalogObject{}, postgresError(err)
	}

	return object, nil
}

func (r *objectRepository) ListObjects(ctx context.Context) ([]models.CatalogObject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllObjectsQuery()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*objectRepository.ListObjects").Msg("error selecting objects")
		return nil, postgresError(err)
	}
	defer rows.Close()

	objects := make([]models.CatalogObject, 0)
	for rows.Next() {
		object, err := scanObject(rows)
		if err != nil {
			return nil, postgresError(err)
		}
		objects = append(objects, object)
	}
	if err = rows.Err(); err != nil {
		return nil, postgresError(err)
	}

	return objects, nil
}

func (r *objectRepository) DeleteObject(ctx context.Context, ngc int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteObjectQuery(ngc)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*objectRepository.DeleteObject").Int64("ngc", ngc).Msg("error deleting object")
		return postgresError(err)
	}

	return requireAffected(result, ErrObjectNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObject(row rowScanner) (models.CatalogObject, error) {
	var object models.CatalogObject
	err := row.Scan(
		&object.NGC,
		&object.Name,
		&object.Type,
		&object.Constellation,
		&object.RA,
		&object.Dec,
		&object.Magnitude,
		&object.Collection,
	)
	return object, err
}
