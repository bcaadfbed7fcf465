// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the account, catalog and favourites logic on
// top of the store repositories.
//
// Every service is stateless: each call re-reads the store. Requests are
// validated by a wrapping validation service before they reach the logic,
// so the inner services assume well-formed input.
package service

import (
	"context"

	"github.com/MKhiriev/beyond-catalog/models"
)

// UserService manages accounts. Every operation on an existing account
// requires the same proof as Authenticate: a password for local accounts,
// a verified access token for Google accounts.
type UserService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Authenticate(ctx context.Context, credentials models.Credentials) (string, error)
	Edit(ctx context.Context, request models.EditUserRequest) error
	Delete(ctx context.Context, credentials models.Credentials) error
}

type ObjectService interface {
	Create(ctx context.Context, request models.CreateObjectRequest) (models.CatalogObject, error)
	Get(ctx context.Context, key models.ObjectKey) (models.CatalogObject, error)
	List(ctx context.Context) ([]models.ObjectSummary, error)
	Delete(ctx context.Context, key models.ObjectKey) error
}

type FavouriteService interface {
	Add(ctx context.Context, request models.FavouriteRequest) error
	Remove(ctx context.Context, request models.FavouriteRequest) error
	List(ctx context.Context, email string) ([]int64, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	// Hash returns the digest of plaintext, or "" for an empty plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. Empty inputs never match.
	Verify(plaintext, digest string) bool
}

// UserServiceWrapper and its siblings decorate a service with extra
// behaviour such as validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type ObjectServiceWrapper interface {
	Wrap(ObjectService) ObjectService
}

type FavouriteServiceWrapper interface {
	Wrap(FavouriteService) FavouriteService
}
