package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantstore/internal/apperr"
	"plantstore/internal/models"
)

// CartService mutates the cart with single atomic store operations (push and
// pull against a filter), never read-modify-write, so concurrent edits from
// multiple sessions cannot lose updates.
type CartService struct {
	store  UserStore
	logger zerolog.Logger
}

func NewCartService(store UserStore, logger zerolog.Logger) *CartService {
	return &CartService{
		store:  store,
		logger: logger,
	}
}

// Add appends the item to the user's cart. Duplicate plantIds are allowed.
func (s *CartService) Add(ctx context.Context, userID string, item models.CartItem) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperr.ErrInvalidID
	}
	if err := s.store.PushCartItem(ctx, id, item); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("Cart item added")
	return nil
}

// Remove pulls every cart entry matching plantID. Removing an absent item
// still succeeds; only a missing user is an error.
func (s *CartService) Remove(ctx context.Context, userID, plantID string) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperr.ErrInvalidID
	}
	if _, err := primitive.ObjectIDFromHex(plantID); err != nil {
		return apperr.ErrInvalidID
	}
	if err := s.store.PullCartItem(ctx, id, plantID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("plant_id", plantID).Msg("Cart item removed")
	return nil
}

func (s *CartService) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}
	return s.store.GetCart(ctx, id)
}
