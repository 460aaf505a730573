package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored document shape reserved for the "user" collection.
// No endpoints read or write it yet.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Interests []string           `bson:"interests,omitempty" json:"interests,omitempty"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
}
