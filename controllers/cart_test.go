package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideCartQuery(t *testing.T) {
	tests := []struct {
		name          string
		requested     string
		authenticated string
		want          cartQueryDecision
	}{
		{"no email requested", "", "a@x.com", cartQueryEmpty},
		{"mismatched identity", "a@x.com", "b@x.com", cartQueryForbidden},
		{"owner reads own cart", "a@x.com", "a@x.com", cartQueryAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decideCartQuery(tt.requested, tt.authenticated))
		})
	}
}
