package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a cart line-item as supplied by the client. Beyond plantId the
// shape is client-defined, so it stays a plain document. Duplicate plantIds
// are permitted; repeated adds append repeated rows.
type CartItem map[string]interface{}

// PlantID returns the plantId field if the item carries one.
func (c CartItem) PlantID() (string, bool) {
	v, ok := c["plantId"].(string)
	return v, ok
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password" json:"-"`
	Admin        bool               `bson:"admin" json:"admin"`
	Cart         []CartItem         `bson:"cart" json:"cart"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PublicUser is the registration response: password hash and store id excluded.
type PublicUser struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AckResponse struct {
	Message string `json:"message"`
}
