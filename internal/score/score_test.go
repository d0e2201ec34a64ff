package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestBadge(t *testing.T) {
	tests := []struct {
		name     string
		score    *float64
		expected string
	}{
		{"unscored", nil, "Not Scored"},
		{"top score", floatPtr(95), "Excellent Match"},
		{"excellent boundary", floatPtr(80), "Excellent Match"},
		{"just under excellent", floatPtr(79), "Good Match"},
		{"good boundary", floatPtr(60), "Good Match"},
		{"just under good", floatPtr(59), "Fair Match"},
		//zero is a real score, not "not scored"
		{"zero", floatPtr(0), "Fair Match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Badge(tt.score))
		})
	}
}
