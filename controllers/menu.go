package controllers

import (
	"context"
	"encoding/json"
	"go-bistro/models"
	"go-bistro/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuController handles menu-related requests
type MenuController struct {
	Collection *mongo.Collection
}

// NewMenuController creates a new MenuController
func NewMenuController(client *mongo.Client) *MenuController {
	collection := client.Database(utils.DatabaseName).Collection("menu")
	return &MenuController{
		Collection: collection,
	}
}

// GetMenu retrieves all menu items
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := mc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching menu", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	for cursor.Next(ctx) {
		var item models.MenuItem
		cursor.Decode(&item)
		items = append(items, item)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// CreateMenuItem handles adding a new menu item (Admin only)
func (mc *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := mc.Collection.InsertOne(ctx, item)
	if err != nil {
		http.Error(w, "Error creating menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// DeleteMenuItem handles deleting a menu item (Admin only)
func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid menu item ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := mc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
