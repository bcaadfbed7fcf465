package http

import (
	"context"

	"github.com/MKhiriev/beyond-catalog/models"
)

type mockUserService struct {
	RegisterFunc     func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	AuthenticateFunc func(ctx context.Context, credentials models.Credentials) (string, error)
	EditFunc         func(ctx context.Context, request models.EditUserRequest) error
	DeleteFunc       func(ctx context.Context, credentials models.Credentials) error
}

func (m *mockUserService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.RegisterFunc(ctx, request)
}

func (m *mockUserService) Authenticate(ctx context.Context, credentials models.Credentials) (string, error) {
	return m.AuthenticateFunc(ctx, credentials)
}

func (m *mockUserService) Edit(ctx context.Context, request models.EditUserRequest) error {
	return m.EditFunc(ctx, request)
}

func (m *mockUserService) Delete(ctx context.Context, credentials models.Credentials) error {
	return m.DeleteFunc(ctx, credentials)
}

type mockObjectService struct {
	CreateFunc func(ctx context.Context, request models.CreateObjectRequest) (models.CatalogObject, error)
	GetFunc    func(ctx context.Context, key models.ObjectKey) (models.CatalogObject, error)
	ListFunc   func(ctx context.Context) ([]models.ObjectSummary, error)
	DeleteFunc func(ctx context.Context, key models.ObjectKey) error
}

func (m *mockObjectService) Create(ctx context.Context, request models.CreateObjectRequest) (models.CatalogObject, error) {
	return m.CreateFunc(ctx, request)
}

func (m *mockObjectService) Get(ctx context.Context, key models.ObjectKey) (models.CatalogObject, error) {
	return m.GetFunc(ctx, key)
}

func (m *mockObjectService) List(ctx context.Context) ([]models.ObjectSummary, error) {
	return m.ListFunc(ctx)
}

func (m *mockObjectService) Delete(ctx context.Context, key models.ObjectKey) error {
	return m.DeleteFunc(ctx, key)
}

type mockFavouriteService struct {
	AddFunc    func(ctx context.Context, request models.FavouriteRequest) error
	RemoveFunc func(ctx context.Context, request models.FavouriteRequest) error
	ListFunc   func(ctx context.Context, email string) ([]int64, error)
}

func (m *mockFavouriteService) Add(ctx context.Context, request models.FavouriteRequest) error {
	return m.AddFunc(ctx, request)
}

func (m *mockFavouriteService) Remove(ctx context.Context, request models.FavouriteRequest) error {
	return m.RemoveFunc(ctx, request)
}

func (m *mockFavouriteService) List(ctx context.Context, email string) ([]int64, error) {
	return m.ListFunc(ctx, email)
}

type mockAppInfoService struct {
	info models.VersionResponse
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.VersionResponse {
	return m.info
}
