package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -2, 10, 0, 10},
		{"zero size falls back to default", 2, 0, DefaultPageSize, DefaultPageSize},
		{"oversized page size falls back to default", 1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tc.page, tc.size)
			assert.Equal(t, tc.wantOffset, offset)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(93, 1, 20)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, int64(93), info.TotalItems)

	// Exact multiple
	info = NewPaginationInfo(40, 2, 20)
	assert.Equal(t, 2, info.TotalPages)

	// Empty first page still reports one page
	info = NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 1, info.CurrentPage)

	// Page beyond the end clamps
	info = NewPaginationInfo(10, 7, 20)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
}
