package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plantstore/internal/apperr"
	"plantstore/internal/models"
)

// Users is the MongoDB-backed user store.
type Users struct {
	col *mongo.Collection
}

func NewUsers(database *mongo.Database) *Users {
	return &Users{col: database.Collection(usersCollection)}
}

func (s *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

func (s *Users) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, storeErr(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.ErrTransient
	}
	return id, nil
}

// FindByID returns the user without the password hash.
func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// PushCartItem appends the item to the user's cart with a single atomic $push.
func (s *Users) PushCartItem(ctx context.Context, id primitive.ObjectID, item models.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"cart": item}})
	if err != nil {
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return apperr.ErrNoOp
	}
	return nil
}

// PullCartItem removes every cart entry whose plantId matches — remove by
// value, not remove-first-occurrence. A zero modified count still succeeds.
func (s *Users) PullCartItem(ctx context.Context, id primitive.ObjectID, plantID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"cart": bson.M{"plantId": plantID}}})
	if err != nil {
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// GetCart projects only the cart field.
func (s *Users) GetCart(ctx context.Context, id primitive.ObjectID) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"cart": 1})
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if err != nil {
		return nil, storeErr(err)
	}
	if user.Cart == nil {
		return []models.CartItem{}, nil
	}
	return user.Cart, nil
}
