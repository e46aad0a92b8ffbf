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

// ReviewController handles review-related requests
type ReviewController struct {
	Collection *mongo.Collection
}

// NewReviewController creates a new ReviewController
func NewReviewController(client *mongo.Client) *ReviewController {
	collection := client.Database(utils.DatabaseName).Collection("reviews")
	return &ReviewController{
		Collection: collection,
	}
}

// GetReviews retrieves all reviews
func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := rc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	for cursor.Next(ctx) {
		var review models.Review
		cursor.Decode(&review)
		reviews = append(reviews, review)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}
