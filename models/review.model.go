package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review represents customer feedback, read-only through this API
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}
