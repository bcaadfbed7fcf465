package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/beyond-catalog/internal/config"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
)

// Storages bundles the repositories of one backend.
type Storages struct {
	UserRepository   UserRepository
	ObjectRepository ObjectRepository

	closer io.Closer
}

// NewStorages connects to the configured backend and builds its repositories.
// The PostgreSQL backend applies pending migrations before returning.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendDynamoDB:
		client, err := NewDynamoDBClient(ctx, cfg.DynamoDB)
		if err != nil {
			log.Err(err).Str("func", "store.NewStorages").Msg("error creating dynamodb client")
			return nil, err
		}
		return NewDynamoStorages(client, cfg.DynamoDB, log), nil

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "store.NewStorages").Msg("error migrating database")
			_ = db.Close()
			return nil, err
		}
		return &Storages{
			UserRepository:   NewUserRepository(db, log),
			ObjectRepository: NewObjectRepository(db, log),
			closer:           db,
		}, nil

	case config.BackendMemory:
		return NewMemoryStorages(log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// NewDynamoStorages builds repositories over an existing DynamoDB client.
func NewDynamoStorages(client DynamoDBAPI, cfg config.DynamoDB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewDynamoUserRepository(client, cfg.UsersTable, cfg.UsernamesTable, log),
		ObjectRepository: NewDynamoObjectRepository(client, cfg.ObjectsTable, log),
	}
}

// Close releases the backend connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
