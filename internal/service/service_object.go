package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/models"
)

type objectService struct {
	objectRepository store.ObjectRepository

	logger *logger.Logger
}

func NewObjectService(objectRepository store.ObjectRepository, logger *logger.Logger) ObjectService {
	return &objectService{
		objectRepository: objectRepository,
		logger:           logger,
	}
}

// Create expects a validated request: every pointer field is set.
func (s *objectService) Create(ctx context.Context, request models.CreateObjectRequest) (models.CatalogObject, error) {
	log := logger.FromContext(ctx)

	object := models.CatalogObject{
		NGC:           *request.NGC,
		Name:          request.Name,
		Type:          request.Type,
		Constellation: request.Constellation,
		RA:            *request.RA,
		Dec:           *request.Dec,
		Magnitude:     *request.Magnitude,
		Collection:    request.Collection,
	}

	if err := s.objectRepository.CreateObject(ctx, object); err != nil {
		log.Err(err).Str("func", "*objectService.Create").Int64("ngc", object.NGC).Msg("object creation ended with error")
		return models.CatalogObject{}, fmt.Errorf("object creation ended with error: %w", err)
	}

	return object, nil
}

func (s *objectService) Get(ctx context.Context, key models.ObjectKey) (models.CatalogObject, error) {
	object, err := s.objectRepository.FindObject(ctx, key.NGC)
	if err != nil {
		return models.CatalogObject{}, fmt.Errorf("object search failed: %w", err)
	}
	return object, nil
}

func (s *objectService) List(ctx context.Context) ([]models.ObjectSummary, error) {
	log := logger.FromContext(ctx)

	objects, err := s.objectRepository.ListObjects(ctx)
	if err != nil {
		log.Err(err).Str("func", "*objectService.List").Msg("object listing ended with error")
		return nil, fmt.Errorf("object listing ended with error: %w", err)
	}

	summaries := make([]models.ObjectSummary, 0, len(objects))
	for _, object := range objects {
		summaries = append(summaries, object.Summary())
	}

	return summaries, nil
}

func (s *objectService) Delete(ctx context.Context, key models.ObjectKey) error {
	if err := s.objectRepository.DeleteObject(ctx, key.NGC); err != nil {
		return fmt.Errorf("object deletion failed: %w", err)
	}
	return nil
}
