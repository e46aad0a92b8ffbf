package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{"whole dollars", 12.0, 1200},
		{"rounds half up", 12.3, 1230},
		{"fractional cent rounds down", 10.004, 1000},
		{"fractional cent rounds up", 10.006, 1001},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(tt.price))
		})
	}
}
