package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantstore/internal/models"
)

// UserStore is the credential/cart collection. Implementations return
// apperr sentinels for lookup misses, duplicates, and store outages.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	PushCartItem(ctx context.Context, id primitive.ObjectID, item models.CartItem) error
	PullCartItem(ctx context.Context, id primitive.ObjectID, plantID string) error
	GetCart(ctx context.Context, id primitive.ObjectID) ([]models.CartItem, error)
}

// PlantStore is the catalog collection.
type PlantStore interface {
	All(ctx context.Context) ([]models.Plant, error)
	FindByField(ctx context.Context, field string, value interface{}) ([]models.Plant, error)
	SearchByName(ctx context.Context, name string) ([]models.Plant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error)
	Insert(ctx context.Context, plant *models.Plant) (*models.Plant, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Plant, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
