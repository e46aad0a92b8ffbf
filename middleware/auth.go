package middleware

import (
	"context"
	"errors"
	"go-bistro/utils"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// RoleLookup fetches the current role for an email. An empty role with a
// nil error means the user exists without admin privileges or does not
// exist at all; either way the gate denies.
type RoleLookup func(ctx context.Context, email string) (string, error)

// AuthMiddleware verifies JWT tokens and attaches user information to the context
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		// Attach user information to the request context
		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly ensures the authenticated user currently holds the admin role.
// The role is fetched per request rather than trusted from the token, so a
// revoked admin is locked out immediately. Must run after AuthMiddleware.
func AdminOnly(roleOf RoleLookup) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			role, err := roleOf(r.Context(), claims.Email)
			if err != nil {
				http.Error(w, "Database error", http.StatusInternalServerError)
				return
			}
			if role != "admin" {
				http.Error(w, "Forbidden: Admins only", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MongoRoleLookup adapts a users collection into a RoleLookup
func MongoRoleLookup(collection *mongo.Collection) RoleLookup {
	return func(ctx context.Context, email string) (string, error) {
		var user struct {
			Role string `bson:"role"`
		}
		err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return user.Role, nil
	}
}
