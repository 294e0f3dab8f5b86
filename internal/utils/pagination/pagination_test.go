package pagination_test

import (
	"testing"

	"github.com/goldhub/pricing_admin_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"zero limit falls back to default", 0, 0, pagination.DefaultPageSize, 0},
		{"negative values normalized", -1, -5, pagination.DefaultPageSize, 0},
		{"oversized limit capped", 5000, 10, pagination.MaxPageSize, 10},
		{"in-range values pass through", 25, 75, 25, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pagination.Clamp(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
