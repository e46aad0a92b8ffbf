package controllers

import (
	"context"
	"encoding/json"
	"go-bistro/models"
	"go-bistro/utils"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatsController serves aggregate figures for the admin dashboard
type StatsController struct {
	UserCollection    *mongo.Collection
	MenuCollection    *mongo.Collection
	PaymentCollection *mongo.Collection
}

// NewStatsController creates a new StatsController
func NewStatsController(client *mongo.Client) *StatsController {
	db := client.Database(utils.DatabaseName)
	return &StatsController{
		UserCollection:    db.Collection("users"),
		MenuCollection:    db.Collection("menu"),
		PaymentCollection: db.Collection("payments"),
	}
}

// sumRevenue totals the price field across payments
func sumRevenue(payments []models.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		total += p.Price
	}
	return total
}

// GetAdminStats returns user, menu item and payment counts plus total
// revenue. Revenue is a full scan over the payments collection on every
// call.
func (sc *StatsController) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	customers, err := sc.UserCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting users", http.StatusInternalServerError)
		return
	}

	products, err := sc.MenuCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting menu items", http.StatusInternalServerError)
		return
	}

	orders, err := sc.PaymentCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		http.Error(w, "Error counting payments", http.StatusInternalServerError)
		return
	}

	cursor, err := sc.PaymentCollection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching payments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	for cursor.Next(ctx) {
		var payment models.Payment
		cursor.Decode(&payment)
		payments = append(payments, payment)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading payments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"customers": customers,
		"products":  products,
		"orders":    orders,
		"revenue":   sumRevenue(payments),
	})
}
