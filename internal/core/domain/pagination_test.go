package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		req   PageRequest
		want  Pagination
		off   int
	}{
		{
			name:  "last partial page",
			total: 45,
			req:   PageRequest{Page: 3, PageSize: 20},
			want:  Pagination{CurrentPage: 3, TotalPages: 3, PageSize: 20, HasNext: false, HasPrev: true},
			off:   40,
		},
		{
			name:  "first page",
			total: 45,
			req:   PageRequest{Page: 1, PageSize: 20},
			want:  Pagination{CurrentPage: 1, TotalPages: 3, PageSize: 20, HasNext: true, HasPrev: false},
			off:   0,
		},
		{
			name:  "exact multiple",
			total: 40,
			req:   PageRequest{Page: 2, PageSize: 20},
			want:  Pagination{CurrentPage: 2, TotalPages: 2, PageSize: 20, HasNext: false, HasPrev: true},
			off:   20,
		},
		{
			name:  "empty result",
			total: 0,
			req:   PageRequest{Page: 1, PageSize: 20},
			want:  Pagination{CurrentPage: 1, TotalPages: 0, PageSize: 20, HasNext: false, HasPrev: false},
			off:   0,
		},
		{
			name:  "page beyond the end",
			total: 5,
			req:   PageRequest{Page: 4, PageSize: 20},
			want:  Pagination{CurrentPage: 4, TotalPages: 1, PageSize: 20, HasNext: false, HasPrev: true},
			off:   60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.total, tt.req))
			assert.Equal(t, tt.off, tt.req.Offset())
		})
	}
}

func TestPriceAggregates_Rounded(t *testing.T) {
	agg := PriceAggregates{TotalCount: 3, AvgPrice: 100.5, MinPrice: 50, MaxPrice: 151, MedianPrice: 99.4}
	assert.Equal(t, PriceStats{TotalCount: 3, AvgPrice: 101, MinPrice: 50, MaxPrice: 151, MedianPrice: 99}, agg.Rounded())

	assert.Equal(t, PriceStats{}, PriceAggregates{}.Rounded())
}
