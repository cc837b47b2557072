package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantstore/internal/apperr"
	"plantstore/internal/models"
)

// PlantService is the catalog: field-filter lookups, substring search, and
// admin-only CRUD.
type PlantService struct {
	store  PlantStore
	logger zerolog.Logger
}

func NewPlantService(store PlantStore, logger zerolog.Logger) *PlantService {
	return &PlantService{
		store:  store,
		logger: logger,
	}
}

func (s *PlantService) All(ctx context.Context) ([]models.Plant, error) {
	return s.store.All(ctx)
}

func (s *PlantService) Featured(ctx context.Context) ([]models.Plant, error) {
	return s.store.FindByField(ctx, "featured", true)
}

func (s *PlantService) Indoor(ctx context.Context) ([]models.Plant, error) {
	return s.store.FindByField(ctx, "indoor", true)
}

func (s *PlantService) Edible(ctx context.Context) ([]models.Plant, error) {
	return s.store.FindByField(ctx, "edible", true)
}

func (s *PlantService) SearchByName(ctx context.Context, name string) ([]models.Plant, error) {
	return s.store.SearchByName(ctx, name)
}

func (s *PlantService) ByDifficulty(ctx context.Context, difficulty string) ([]models.Plant, error) {
	return s.store.FindByField(ctx, "difficulty", difficulty)
}

func (s *PlantService) ByFamily(ctx context.Context, family string) ([]models.Plant, error) {
	return s.store.FindByField(ctx, "family_name", family)
}

func (s *PlantService) ByScientificName(ctx context.Context, name string) ([]models.Plant, error) {
	return s.store.FindByField(ctx, "scientific_name", name)
}

func (s *PlantService) Get(ctx context.Context, plantID string) (*models.Plant, error) {
	id, err := primitive.ObjectIDFromHex(plantID)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}
	return s.store.FindByID(ctx, id)
}

func (s *PlantService) Create(ctx context.Context, plant *models.Plant) (*models.Plant, error) {
	created, err := s.store.Insert(ctx, plant)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("plant_id", created.ID.Hex()).Str("plant_name", created.PlantName).Msg("Plant created")
	return created, nil
}

// UpdateFields applies a partial update. The client cannot overwrite _id.
func (s *PlantService) UpdateFields(ctx context.Context, plantID string, fields map[string]interface{}) (*models.Plant, error) {
	id, err := primitive.ObjectIDFromHex(plantID)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}
	delete(fields, "_id")
	if len(fields) == 0 {
		return s.store.FindByID(ctx, id)
	}
	return s.store.Update(ctx, id, fields)
}

func (s *PlantService) Delete(ctx context.Context, plantID string) error {
	id, err := primitive.ObjectIDFromHex(plantID)
	if err != nil {
		return apperr.ErrInvalidID
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("plant_id", plantID).Msg("Plant deleted")
	return nil
}
