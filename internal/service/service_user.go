package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/internal/adapter"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	verifier       adapter.IdentityVerifier

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, verifier adapter.IdentityVerifier, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		verifier:       verifier,
		logger:         logger,
	}
}

// Register creates a local or Google account.
//
// The lookups on email and username only give an early answer; the store's
// conditional write decides races between concurrent registrations. A
// password supplied with a Google registration is discarded.
func (s *userService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureEmailFree(ctx, request.Email); err != nil {
		return models.User{}, err
	}
	if err := s.ensureUsernameFree(ctx, request.Username); err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:     request.Email,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		IsGoogle:  request.IsGoogle,
	}
	if !request.IsGoogle {
		digest, err := s.hasher.Hash(request.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.Register").Msg("error hashing password")
			return models.User{}, err
		}
		user.Password = digest
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*userService.Register").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Authenticate checks the proof in credentials and returns the username.
func (s *userService) Authenticate(ctx context.Context, credentials models.Credentials) (string, error) {
	user, err := s.authenticatedUser(ctx, credentials)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// Edit changes username and profile picture. A new username that is
// already taken fails with store.ErrUsernameAlreadyExists before any write.
func (s *userService) Edit(ctx context.Context, request models.EditUserRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.authenticatedUser(ctx, request.Credentials)
	if err != nil {
		return err
	}

	if request.Username != user.Username {
		if err = s.ensureUsernameFree(ctx, request.Username); err != nil {
			return err
		}
	}

	if err = s.userRepository.UpdateProfile(ctx, user.Email, request.Username, request.ProfilePic); err != nil {
		log.Err(err).Str("func", "*userService.Edit").Str("email", user.Email).Msg("profile update ended with error")
		return fmt.Errorf("profile update ended with error: %w", err)
	}

	return nil
}

func (s *userService) Delete(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	user, err := s.authenticatedUser(ctx, credentials)
	if err != nil {
		return err
	}

	if err = s.userRepository.DeleteUser(ctx, user.Email); err != nil {
		log.Err(err).Str("func", "*userService.Delete").Str("email", user.Email).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

func (s *userService) authenticatedUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Err(err).Str("func", "*userService.authenticatedUser").Str("email", credentials.Email).Msg("user not found")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.authenticatedUser").Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = s.checkProof(ctx, user, credentials); err != nil {
		log.Warn().Err(err).Str("func", "*userService.authenticatedUser").Str("email", user.Email).Msg("authentication failed")
		return models.User{}, err
	}

	return user, nil
}

// checkProof branches on the stored account type, never on what the caller
// claims. A Google account cannot be unlocked with a password even when a
// digest happens to be stored.
func (s *userService) checkProof(ctx context.Context, user models.User, credentials models.Credentials) error {
	if user.IsGoogle {
		if !credentials.IsGoogle {
			return ErrAuthMethodMismatch
		}
		if !s.verifier.Verify(ctx, credentials.AccessToken) {
			return ErrTokenVerificationFailed
		}
		return nil
	}

	if credentials.IsGoogle {
		return ErrAuthMethodMismatch
	}
	if credentials.Password == "" {
		return ErrPasswordRequired
	}
	if !s.hasher.Verify(credentials.Password, user.Password) {
		return ErrWrongPassword
	}

	return nil
}

func (s *userService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return store.ErrEmailAlreadyExists
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("user search by email failed: %w", err)
	}
}

func (s *userService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.userRepository.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return store.ErrUsernameAlreadyExists
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("user search by username failed: %w", err)
	}
}
