package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/models"
)

type favouriteService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewFavouriteService(userRepository store.UserRepository, logger *logger.Logger) FavouriteService {
	return &favouriteService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *favouriteService) Add(ctx context.Context, request models.FavouriteRequest) error {
	if err := s.userRepository.AddFavourite(ctx, request.Email, request.NGC); err != nil {
		return fmt.Errorf("adding favourite failed: %w", err)
	}
	return nil
}

// Remove fails with store.ErrFavouritesModified when a concurrent writer
// changed the list between the read and the removal.
func (s *favouriteService) Remove(ctx context.Context, request models.FavouriteRequest) error {
	log := logger.FromContext(ctx)

	err := s.userRepository.RemoveFavourite(ctx, request.Email, request.NGC)
	if errors.Is(err, store.ErrFavouritesModified) {
		log.Warn().Str("func", "*favouriteService.Remove").Str("email", request.Email).Int64("ngc", request.NGC).Msg("favourites changed concurrently")
	}
	if err != nil {
		return fmt.Errorf("removing favourite failed: %w", err)
	}

	return nil
}

// List returns the favourites in insertion order. An unknown user has none.
func (s *favouriteService) List(ctx context.Context, email string) ([]int64, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return []int64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Favourites == nil {
		return []int64{}, nil
	}
	return user.Favourites, nil
}
