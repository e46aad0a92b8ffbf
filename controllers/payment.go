package controllers

import (
	"context"
	"encoding/json"
	"go-bistro/middleware"
	"go-bistro/models"
	"go-bistro/utils"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentController handles payment intents and recorded payments
type PaymentController struct {
	PaymentCollection *mongo.Collection
	CartCollection    *mongo.Collection
	EmailService      *utils.EmailService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(client *mongo.Client, emailService *utils.EmailService) *PaymentController {
	paymentCollection := client.Database(utils.DatabaseName).Collection("payments")
	cartCollection := client.Database(utils.DatabaseName).Collection("carts")
	return &PaymentController{
		PaymentCollection: paymentCollection,
		CartCollection:    cartCollection,
		EmailService:      emailService,
	}
}

// parseCartItemIDs converts posted cart item hex ids into the ObjectIDs the
// reconciliation delete targets; any malformed id rejects the whole payment
func parseCartItemIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, hex := range hexes {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CreatePaymentIntent requests a payment authorization from Stripe for the
// posted price (major currency units) and returns the client secret
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	amount := utils.ToMinorUnits(body.Price)
	clientSecret, err := utils.CreatePaymentIntent(amount, "usd")
	if err != nil {
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}

// RecordPayment inserts the payment document and then removes the cart
// items it paid for. The two store operations are sequential and not
// transactional: a failed delete after a successful insert leaves stale
// cart items behind.
func (pc *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payment models.Payment
	err := json.NewDecoder(r.Body).Decode(&payment)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	cartIDs, err := parseCartItemIDs(payment.CartItems)
	if err != nil {
		http.Error(w, "Invalid cart item ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	insertedResult, err := pc.PaymentCollection.InsertOne(ctx, payment)
	if err != nil {
		http.Error(w, "Error recording payment", http.StatusInternalServerError)
		return
	}

	deletedResult, err := pc.CartCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		http.Error(w, "Error clearing cart items", http.StatusInternalServerError)
		return
	}

	if pc.EmailService != nil {
		go func(email, transactionID string, amount float64) {
			if err := pc.EmailService.SendPaymentReceipt(email, transactionID, amount); err != nil {
				log.Printf("Failed to send receipt to %s: %v", email, err)
			}
		}(claims.Email, payment.TransactionID, payment.Price)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"insertedResult": insertedResult,
		"deletedResult":  deletedResult,
	})
}
