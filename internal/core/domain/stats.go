package domain

import "math"

// PriceAggregates is what the store returns for a filtered set.
// NULL aggregates of an empty set are already zero here.
type PriceAggregates struct {
	TotalCount int64
	AvgPrice   float64
	MinPrice   int64
	MaxPrice   int64
	// MedianPrice is only computed for the stats endpoint.
	MedianPrice float64
}

// PriceStats is the rounded form sent to clients.
type PriceStats struct {
	TotalCount  int64
	AvgPrice    int64
	MinPrice    int64
	MaxPrice    int64
	MedianPrice int64
}

func (a PriceAggregates) Rounded() PriceStats {
	return PriceStats{
		TotalCount:  a.TotalCount,
		AvgPrice:    roundOrZero(a.AvgPrice),
		MinPrice:    a.MinPrice,
		MaxPrice:    a.MaxPrice,
		MedianPrice: roundOrZero(a.MedianPrice),
	}
}

func roundOrZero(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}

// SearchResult is one page of listings plus statistics over the whole filtered set.
type SearchResult struct {
	Listings   []Listing
	TotalCount int64
	Pagination Pagination
	Stats      PriceStats
}
