package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	cases := []struct {
		name      string
		lat, lng  float64
		wantState string
		wantCity  string
	}{
		{"los_angeles", 34.0522, -118.2437, "California", "Los Angeles"},
		{"new_york", 40.7128, -74.0060, "New York", "New York City"},
		{"miami", 25.9, -80.2, "Florida", "Miami"},
		{"houston", 29.76, -95.37, "Texas", "Houston"},
		{"seattle", 47.6, -122.3, "Washington", "Seattle"},
		{"denver", 39.74, -104.99, "Colorado", "Denver"},
		{"null_island", 0, 0, "Unknown", "Unknown City"},
		{"middle_of_atlantic", 35.0, -40.0, "Unknown", "Unknown City"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			state, city := r.Resolve(c.lat, c.lng)
			assert.Equal(t, c.wantState, state)
			assert.Equal(t, c.wantCity, city)
		})
	}
}

// Box order is behaviorally significant where boxes overlap: a point inside
// both the Virginia and Maryland ranges must resolve to whichever is declared
// first. (38.5, -76.0) sits in the NJ/VA/MD intersection; New Jersey wins
// because it precedes both in the table.
func TestResolver_FirstMatchWins(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	state, _ := r.Resolve(38.95, -75.55)
	assert.Equal(t, "New Jersey", state)

	// Inside Virginia and Maryland but below New Jersey's lat range.
	state, _ = r.Resolve(38.0, -76.0)
	assert.Equal(t, "Virginia", state)
}

func TestResolver_BoundaryInclusive(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	state, city := r.Resolve(32.5, -124.4)
	assert.Equal(t, "California", state)
	assert.Equal(t, "Los Angeles", city)
}
