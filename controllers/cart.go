package controllers

import (
	"context"
	"encoding/json"
	"go-bistro/middleware"
	"go-bistro/models"
	"go-bistro/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartController handles cart-related requests
type CartController struct {
	Collection *mongo.Collection
}

// NewCartController creates a new CartController
func NewCartController(client *mongo.Client) *CartController {
	collection := client.Database(utils.DatabaseName).Collection("carts")
	return &CartController{
		Collection: collection,
	}
}

// cartQueryDecision is the outcome of checking a cart query against the
// authenticated identity
type cartQueryDecision int

const (
	cartQueryEmpty cartQueryDecision = iota
	cartQueryForbidden
	cartQueryAllowed
)

// decideCartQuery gates a cart listing: no requested email yields an empty
// result, a mismatch with the authenticated email is forbidden.
func decideCartQuery(requested, authenticated string) cartQueryDecision {
	if requested == "" {
		return cartQueryEmpty
	}
	if requested != authenticated {
		return cartQueryForbidden
	}
	return cartQueryAllowed
}

// AddToCart inserts a cart item
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cc.Collection.InsertOne(ctx, item)
	if err != nil {
		http.Error(w, "Error adding cart item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetCartItems retrieves the cart items for the email given in the query
// string. Only the owning identity may read its cart.
func (cc *CartController) GetCartItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	w.Header().Set("Content-Type", "application/json")

	switch decideCartQuery(email, claims.Email) {
	case cartQueryEmpty:
		json.NewEncoder(w).Encode([]models.CartItem{})
		return
	case cartQueryForbidden:
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := cc.Collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		http.Error(w, "Error fetching cart items", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	for cursor.Next(ctx) {
		var item models.CartItem
		cursor.Decode(&item)
		items = append(items, item)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading cart items", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(items)
}

// DeleteCartItem deletes a cart item by id
func (cc *CartController) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid cart item ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting cart item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
