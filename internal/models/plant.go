package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Plant struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PlantName      string             `bson:"plant_name" json:"plant_name"`
	ScientificName string             `bson:"scientific_name" json:"scientific_name"`
	FamilyName     string             `bson:"family_name" json:"family_name"`
	Difficulty     string             `bson:"difficulty" json:"difficulty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL       string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Featured       bool               `bson:"featured" json:"featured"`
	Indoor         bool               `bson:"indoor" json:"indoor"`
	Edible         bool               `bson:"edible" json:"edible"`
}
