package db

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plantstore/internal/models"
)

// Plants is the MongoDB-backed catalog store.
type Plants struct {
	col *mongo.Collection
}

func NewPlants(database *mongo.Database) *Plants {
	return &Plants{col: database.Collection(plantsCollection)}
}

func (s *Plants) All(ctx context.Context) ([]models.Plant, error) {
	return s.find(ctx, bson.M{})
}

func (s *Plants) FindByField(ctx context.Context, field string, value interface{}) ([]models.Plant, error) {
	return s.find(ctx, bson.M{field: value})
}

// SearchByName matches plant_name by case-insensitive substring.
func (s *Plants) SearchByName(ctx context.Context, name string) ([]models.Plant, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	return s.find(ctx, bson.M{"plant_name": bson.M{"$regex": pattern}})
}

func (s *Plants) find(ctx context.Context, filter bson.M) ([]models.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr(err)
	}
	plants := []models.Plant{}
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, storeErr(err)
	}
	return plants, nil
}

func (s *Plants) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var plant models.Plant
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&plant)
	if err != nil {
		return nil, storeErr(err)
	}
	return &plant, nil
}

func (s *Plants) Insert(ctx context.Context, plant *models.Plant) (*models.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.col.InsertOne(ctx, plant)
	if err != nil {
		return nil, storeErr(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		plant.ID = id
	}
	return plant, nil
}

// Update applies a $set of the given fields and returns the updated document.
func (s *Plants) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var plant models.Plant
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&plant)
	if err != nil {
		return nil, storeErr(err)
	}
	return &plant, nil
}

func (s *Plants) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		return storeErr(err)
	}
	return nil
}
