package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/models"
)

// memoryDB is the process-local backend used by tests and local runs.
// A single mutex serializes every operation, so each method is atomic in
// the same way a conditional write is atomic in DynamoDB.
type memoryDB struct {
	mu sync.Mutex

	users     map[string]models.User
	usernames map[string]string // username -> email
	objects   map[int64]models.CatalogObject
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:     make(map[string]models.User),
		usernames: make(map[string]string),
		objects:   make(map[int64]models.CatalogObject),
	}
}

type memoryUserRepository struct {
	db     *memoryDB
	logger *logger.Logger
}

type memoryObjectRepository struct {
	db     *memoryDB
	logger *logger.Logger
}

// NewMemoryStorages builds repositories over one shared in-memory database.
func NewMemoryStorages(logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating in-memory storages")
	db := newMemoryDB()
	return &Storages{
		UserRepository:   &memoryUserRepository{db: db, logger: logger},
		ObjectRepository: &memoryObjectRepository{db: db, logger: logger},
	}
}

func cloneUser(u models.User) models.User {
	u.Favourites = slices.Clone(u.Favourites)
	return u
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[user.Email]; ok {
		return ErrEmailAlreadyExists
	}
	if _, ok := r.db.usernames[user.Username]; ok {
		return ErrUsernameAlreadyExists
	}

	r.db.users[user.Email] = cloneUser(user)
	r.db.usernames[user.Username] = user.Email
	return nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *memoryUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	email, ok := r.db.usernames[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return cloneUser(r.db.users[email]), nil
}

func (r *memoryUserRepository) UpdateProfile(ctx context.Context, email, username, profilePic string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[email]
	if !ok {
		return ErrUserNotFound
	}

	if username != user.Username {
		if _, taken := r.db.usernames[username]; taken {
			return ErrUsernameAlreadyExists
		}
		delete(r.db.usernames, user.Username)
		r.db.usernames[username] = email
	}

	user.Username = username
	user.ProfilePic = profilePic
	r.db.users[email] = user
	return nil
}

func (r *memoryUserRepository) DeleteUser(ctx context.Context, email string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[email]
	if !ok {
		return ErrUserNotFound
	}

	delete(r.db.users, email)
	delete(r.db.usernames, user.Username)
	return nil
}

func (r *memoryUserRepository) AddFavourite(ctx context.Context, email string, ngc int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[email]
	if !ok {
		return ErrUserNotFound
	}
	if user.HasFavourite(ngc) {
		return ErrFavouriteAlreadyExists
	}

	user.Favourites = append(slices.Clone(user.Favourites), ngc)
	r.db.users[email] = user
	return nil
}

func (r *memoryUserRepository) RemoveFavourite(ctx context.Context, email string, ngc int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[email]
	if !ok {
		return ErrUserNotFound
	}

	i := models.FavouriteIndex(user.Favourites, ngc)
	if i < 0 {
		return ErrFavouriteNotFound
	}

	user.Favourites = slices.Delete(slices.Clone(user.Favourites), i, i+1)
	r.db.users[email] = user
	return nil
}

func (r *memoryObjectRepository) CreateObject(ctx context.Context, object models.CatalogObject) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.objects[object.NGC]; ok {
		return ErrObjectAlreadyExists
	}
	r.db.objects[object.NGC] = object
	return nil
}

func (r *memoryObjectRepository) FindObject(ctx context.Context, ngc int64) (models.CatalogObject, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	object, ok := r.db.objects[ngc]
	if !ok {
		return models.CatalogObject{}, ErrObjectNotFound
	}
	return object, nil
}

func (r *memoryObjectRepository) ListObjects(ctx context.Context) ([]models.CatalogObject, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	objects := make([]models.CatalogObject, 0, len(r.db.objects))
	for _, object := range r.db.objects {
		objects = append(objects, object)
	}
	sortObjects(objects)
	return objects, nil
}

func (r *memoryObjectRepository) DeleteObject(ctx context.Context, ngc int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.objects[ngc]; !ok {
		return ErrObjectNotFound
	}
	delete(r.db.objects, ngc)
	return nil
}

func sortObjects(objects []models.CatalogObject) {
	slices.SortFunc(objects, func(a, b models.CatalogObject) int {
		return cmp.Compare(a.NGC, b.NGC)
	})
}
