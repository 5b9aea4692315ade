package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOutlier(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		low   float64
		high  float64
		want  bool
	}{
		{"at low threshold", 3.0, 3.0, 7.5, true},
		{"just above low threshold", 3.1, 3.0, 7.5, false},
		{"at high threshold", 7.5, 3.0, 7.5, true},
		{"just below high threshold", 7.4, 3.0, 7.5, false},
		{"mid-range", 5.0, 3.0, 7.5, false},
		{"extreme negative", 1.0, 3.0, 7.5, true},
		{"extreme positive", 10.0, 3.0, 7.5, true},
		{"inverted thresholds flag everything", 5.0, 6.0, 4.0, true},
		{"equal thresholds flag everything", 5.0, 5.0, 5.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOutlier(tt.score, tt.low, tt.high))
		})
	}
}
