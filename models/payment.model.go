package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a completed transaction. CartItems holds the hex ids of the
// cart documents paid for; those documents are removed once the payment is
// recorded. Immutable after insertion.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transaction_id" json:"transactionId"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        string             `bson:"status" json:"status"`
	CartItems     []string           `bson:"cart_items" json:"cartItems"`
	MenuItems     []string           `bson:"menu_items" json:"menuItems"`
}
