// main.go
package main

import (
	"context"
	"fmt"
	"go-bistro/controllers"
	"go-bistro/middleware"
	"go-bistro/routes"
	"go-bistro/utils"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT signing secret and Stripe key
	utils.JwtKey = []byte(os.Getenv("ACCESS_TOKEN"))
	utils.SetStripeKey(os.Getenv("PAYMENT_SECRET_KEY"))

	// Initialize EmailService (optional; nil when unconfigured)
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize controllers
	userController := controllers.NewUserController(client)
	menuController := controllers.NewMenuController(client)
	reviewController := controllers.NewReviewController(client)
	cartController := controllers.NewCartController(client)
	paymentController := controllers.NewPaymentController(client, emailService)
	statsController := controllers.NewStatsController(client)

	// The admin gate reads the role from the users collection per request
	roleOf := middleware.MongoRoleLookup(
		client.Database(utils.DatabaseName).Collection("users"))

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, roleOf,
		userController, menuController, reviewController,
		cartController, paymentController, statsController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
