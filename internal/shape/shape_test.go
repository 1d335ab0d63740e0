package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenameKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    []map[string]any
		expected []map[string]any
	}{
		{
			name: "Geo result keys renamed",
			input: []map[string]any{
				{"id": int64(1), "user_id": int64(7), "n_bedrooms": int64(2), "n_bathrooms": int64(1), "area_m2": 49.0, "avail_from": "2024-06-01"},
			},
			expected: []map[string]any{
				{"id": int64(1), "userId": int64(7), "nBedrooms": int64(2), "nBathrooms": int64(1), "areaM2": 49.0, "availableFrom": "2024-06-01"},
			},
		},
		{
			name: "Unmapped keys pass through unchanged",
			input: []map[string]any{
				{"title": "Studio", "monthly_rent_eur": 1420.0, "distance": 2.4},
			},
			expected: []map[string]any{
				{"title": "Studio", "monthly_rent_eur": 1420.0, "distance": 2.4},
			},
		},
		{
			name:     "Empty input",
			input:    []map[string]any{},
			expected: []map[string]any{},
		},
		{
			name: "Record order preserved",
			input: []map[string]any{
				{"user_id": int64(1)},
				{"user_id": int64(2)},
				{"user_id": int64(3)},
			},
			expected: []map[string]any{
				{"userId": int64(1)},
				{"userId": int64(2)},
				{"userId": int64(3)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenameKeys(tt.input, GeoResultKeys)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, len(tt.input))
		})
	}
}

func TestRenameKeysDoesNotMutateInput(t *testing.T) {
	input := []map[string]any{{"user_id": int64(1), "city": "Berlin"}}
	_ = RenameKeys(input, GeoResultKeys)

	assert.Contains(t, input[0], "user_id")
	assert.NotContains(t, input[0], "userId")
}
