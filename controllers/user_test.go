package controllers

import (
	"context"
	"encoding/json"
	"go-bistro/middleware"
	"go-bistro/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestIssueToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	uc := &UserController{}

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
	rec := httptest.NewRecorder()
	uc.IssueToken(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NoError(t, err)

	claims, err := utils.ParseToken(body["token"])
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestIssueToken_MissingEmail(t *testing.T) {
	uc := &UserController{}

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	uc.IssueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_FirstRegistrationInserts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upsert inserts a new user", func(mt *mtest.T) {
		uc := &UserController{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{
				{Key: "index", Value: int32(0)},
				{Key: "_id", Value: primitive.NewObjectID()},
			}}},
		))

		req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
		rec := httptest.NewRecorder()
		uc.Register(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["UpsertedCount"])
		assert.NotEmpty(t, body["UpsertedID"])
	})
}

func TestRegister_DuplicateEmailIsNoOp(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second registration reports existing account", func(mt *mtest.T) {
		uc := &UserController{Collection: mt.Coll}
		// The email matched an existing document, nothing was upserted
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
		rec := httptest.NewRecorder()
		uc.Register(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "already have an account", body["message"])
	})
}

func TestRegister_MissingEmail(t *testing.T) {
	uc := &UserController{}

	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	uc.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckAdmin_MismatchShortCircuits(t *testing.T) {
	// Collection is nil: the mismatch branch must answer without a lookup
	uc := &UserController{}

	req := httptest.NewRequest("GET", "/users/admin/other@example.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "other@example.com"})
	claims := &utils.Claims{Email: "me@example.com"}
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))

	rec := httptest.NewRecorder()
	uc.CheckAdmin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.False(t, body["admin"])
}

func TestCheckAdmin_Unauthenticated(t *testing.T) {
	uc := &UserController{}

	req := httptest.NewRequest("GET", "/users/admin/me@example.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "me@example.com"})
	rec := httptest.NewRecorder()
	uc.CheckAdmin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
