package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/internal/validators"
	"github.com/MKhiriev/beyond-catalog/models"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

type userValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &userValidationService{validator: validators.NewRequestValidator()}
}

func (v *userValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *userValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, invalid(err)
	}
	return v.inner.Register(ctx, request)
}

func (v *userValidationService) Authenticate(ctx context.Context, credentials models.Credentials) (string, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return "", invalid(err)
	}
	return v.inner.Authenticate(ctx, credentials)
}

func (v *userValidationService) Edit(ctx context.Context, request models.EditUserRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return invalid(err)
	}
	return v.inner.Edit(ctx, request)
}

func (v *userValidationService) Delete(ctx context.Context, credentials models.Credentials) error {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return invalid(err)
	}
	return v.inner.Delete(ctx, credentials)
}

// ─────────────────────────────────────────────
// objects
// ─────────────────────────────────────────────

type objectValidationService struct {
	inner     ObjectService
	validator validators.Validator
}

func NewObjectValidationService() ObjectServiceWrapper {
	return &objectValidationService{validator: validators.NewRequestValidator()}
}

func (v *objectValidationService) Wrap(inner ObjectService) ObjectService {
	v.inner = inner
	return v
}

func (v *objectValidationService) Create(ctx context.Context, request models.CreateObjectRequest) (models.CatalogObject, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.CatalogObject{}, invalid(err)
	}
	return v.inner.Create(ctx, request)
}

func (v *objectValidationService) Get(ctx context.Context, key models.ObjectKey) (models.CatalogObject, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.CatalogObject{}, invalid(err)
	}
	return v.inner.Get(ctx, key)
}

func (v *objectValidationService) List(ctx context.Context) ([]models.ObjectSummary, error) {
	return v.inner.List(ctx)
}

func (v *objectValidationService) Delete(ctx context.Context, key models.ObjectKey) error {
	if err := v.validator.Validate(ctx, key); err != nil {
		return invalid(err)
	}
	return v.inner.Delete(ctx, key)
}

// ─────────────────────────────────────────────
// favourites
// ─────────────────────────────────────────────

type favouriteValidationService struct {
	inner     FavouriteService
	validator validators.Validator
}

func NewFavouriteValidationService() FavouriteServiceWrapper {
	return &favouriteValidationService{validator: validators.NewRequestValidator()}
}

func (v *favouriteValidationService) Wrap(inner FavouriteService) FavouriteService {
	v.inner = inner
	return v
}

func (v *favouriteValidationService) Add(ctx context.Context, request models.FavouriteRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return invalid(err)
	}
	return v.inner.Add(ctx, request)
}

func (v *favouriteValidationService) Remove(ctx context.Context, request models.FavouriteRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return invalid(err)
	}
	return v.inner.Remove(ctx, request)
}

func (v *favouriteValidationService) List(ctx context.Context, email string) ([]int64, error) {
	if err := v.validator.Validate(ctx, models.Credentials{Email: email}); err != nil {
		return nil, invalid(err)
	}
	return v.inner.List(ctx, email)
}
