// routes/routes.go
package routes

import (
	"fmt"
	"go-bistro/controllers"
	"go-bistro/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application. Routes opt in
// to authentication and the admin gate per group; nothing is gated
// router-wide.
func RegisterRoutes(
	router *mux.Router,
	roleOf middleware.RoleLookup,
	userController *controllers.UserController,
	menuController *controllers.MenuController,
	reviewController *controllers.ReviewController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	statsController *controllers.StatsController,
) {
	// Liveness
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "bistro boss is open...")
	}).Methods("GET")

	// Public routes
	router.HandleFunc("/jwt", userController.IssueToken).Methods("POST")
	router.HandleFunc("/users", userController.Register).Methods("POST")
	router.HandleFunc("/users/delete/{id}", userController.DeleteUser).Methods("DELETE")
	router.HandleFunc("/users/admin/{id}", userController.PromoteToAdmin).Methods("PATCH")
	router.HandleFunc("/menu", menuController.GetMenu).Methods("GET")
	router.HandleFunc("/reviews", reviewController.GetReviews).Methods("GET")
	router.HandleFunc("/carts", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/carts/{id}", cartController.DeleteCartItem).Methods("DELETE")

	// Authenticated routes
	authed := router.PathPrefix("/").Subrouter()
	authed.Use(middleware.AuthMiddleware)
	authed.HandleFunc("/users/admin/{email}", userController.CheckAdmin).Methods("GET")
	authed.HandleFunc("/carts", cartController.GetCartItems).Methods("GET")
	authed.HandleFunc("/create-payment-intent", paymentController.CreatePaymentIntent).Methods("POST")
	authed.HandleFunc("/payments", paymentController.RecordPayment).Methods("POST")

	// Admin routes
	admin := router.PathPrefix("/").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminOnly(roleOf))
	admin.HandleFunc("/users", userController.GetUsers).Methods("GET")
	admin.HandleFunc("/menu", menuController.CreateMenuItem).Methods("POST")
	admin.HandleFunc("/menu/{id}", menuController.DeleteMenuItem).Methods("DELETE")
	admin.HandleFunc("/admin-stats", statsController.GetAdminStats).Methods("GET")
}
