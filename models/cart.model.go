package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a pending purchase tied to a user's email. Name, price and
// image are snapshots captured at add-time, not live-joined to the menu.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MenuItemID string             `bson:"menu_item_id" json:"menu_item_id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Price      float64            `bson:"price" json:"price"`
	Image      string             `bson:"image" json:"image"`
}
