package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasteryStars(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		filled int
	}{
		{"unseen", 0, 0},
		{"mid", 3, 3},
		{"max", 5, 5},
		{"clamps below", -1, 0},
		{"clamps above", 9, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MasteryStars(tt.level)
			assert.Equal(t, tt.filled, strings.Count(got, "★"))
			assert.Equal(t, 5-tt.filled, strings.Count(got, "☆"))
		})
	}
}
