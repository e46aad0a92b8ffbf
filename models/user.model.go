package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user. Email is the natural key; role is
// either empty (ordinary user) or "admin".
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}
