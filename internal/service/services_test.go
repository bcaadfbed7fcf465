// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/beyond-catalog/internal/config"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubVerifier struct {
	accepted string
}

func (s stubVerifier) Verify(_ context.Context, token string) bool {
	return token != "" && token == s.accepted
}

// newMemoryServices wires the full service stack over the in-memory store.
func newMemoryServices(t *testing.T) *Services {
	t.Helper()
	return NewServices(
		store.NewMemoryStorages(logger.Nop()),
		stubVerifier{accepted: "google-ok"},
		models.NewAppBuildInfo("1.0.0", "", ""),
		config.App{PasswordHashCost: bcrypt.MinCost},
		logger.Nop(),
	)
}

func register(email, username string) models.RegisterRequest {
	return models.RegisterRequest{Email: email, Username: username, Password: "pw", FirstName: "A", LastName: "A"}
}

func TestScenario_RegisterAndAuthenticate(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	_, err := s.UserService.Register(ctx, register("a@x.com", "alice"))
	require.NoError(t, err)

	_, err = s.UserService.Register(ctx, register("b@x.com", "alice"))
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)

	_, err = s.UserService.Register(ctx, register("a@x.com", "other"))
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)

	username, err := s.UserService.Authenticate(ctx, models.Credentials{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = s.UserService.Authenticate(ctx, models.Credentials{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestScenario_ConcurrentRegistrationSameUsername(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var created atomic.Int32
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			email := string(rune('a'+i)) + "@x.com"
			if _, err := s.UserService.Register(ctx, register(email, "alice")); err == nil {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
}

func TestScenario_GoogleAccountLifecycle(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	_, err := s.UserService.Register(ctx, models.RegisterRequest{
		Email: "g@x.com", Username: "gina", FirstName: "G", LastName: "H", IsGoogle: true,
	})
	require.NoError(t, err)

	_, err = s.UserService.Authenticate(ctx, models.Credentials{Email: "g@x.com", Password: "anything"})
	assert.ErrorIs(t, err, ErrAuthMethodMismatch)

	google := models.Credentials{Email: "g@x.com", IsGoogle: true, AccessToken: "google-ok"}
	require.NoError(t, s.UserService.Edit(ctx, models.EditUserRequest{Credentials: google, Username: "gigi", ProfilePic: "p.png"}))

	username, err := s.UserService.Authenticate(ctx, google)
	require.NoError(t, err)
	assert.Equal(t, "gigi", username)

	require.NoError(t, s.UserService.Delete(ctx, google))
	assert.ErrorIs(t, s.UserService.Delete(ctx, google), store.ErrUserNotFound)
}

func TestScenario_ObjectLifecycle(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	_, err := s.ObjectService.Create(ctx, createObjectRequest(5272))
	require.NoError(t, err)

	_, err = s.ObjectService.Create(ctx, createObjectRequest(5272))
	assert.ErrorIs(t, err, store.ErrObjectAlreadyExists)

	object, err := s.ObjectService.Get(ctx, models.ObjectKey{NGC: 5272})
	require.NoError(t, err)
	assert.Equal(t, "Hercules", object.Constellation)
	assert.Equal(t, "13.703", object.RA.String())

	list, err := s.ObjectService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.ObjectService.Delete(ctx, models.ObjectKey{NGC: 5272}))

	_, err = s.ObjectService.Get(ctx, models.ObjectKey{NGC: 5272})
	assert.ErrorIs(t, err, store.ErrObjectNotFound)
}

func TestScenario_Favourites(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	_, err := s.UserService.Register(ctx, register("a@x.com", "alice"))
	require.NoError(t, err)

	fav := models.FavouriteRequest{Email: "a@x.com", NGC: 5272}
	require.NoError(t, s.FavouriteService.Add(ctx, fav))
	assert.ErrorIs(t, s.FavouriteService.Add(ctx, fav), store.ErrFavouriteAlreadyExists)

	list, err := s.FavouriteService.List(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []int64{5272}, list)

	require.NoError(t, s.FavouriteService.Remove(ctx, fav))
	assert.ErrorIs(t, s.FavouriteService.Remove(ctx, fav), store.ErrFavouriteNotFound)

	list, err = s.FavouriteService.List(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = s.FavouriteService.List(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Equal(t, []int64{}, list)
}

func TestScenario_Version(t *testing.T) {
	s := newMemoryServices(t)
	assert.Equal(t, "1.0.0", s.AppInfoService.GetBuildInfo(context.Background()).Version)
}
