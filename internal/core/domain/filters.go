package domain

// SearchFilters holds every optional filter of the search endpoint.
// Empty slices and nil pointers mean "not set".
type SearchFilters struct {
	Search        string
	Brands        []string
	Series        []string
	SubModel      string
	Models        []string
	Years         []int
	Fuels         []string
	Transmissions []string
	Sellers       []string
	Cities        []string

	PriceMin   *int64
	PriceMax   *int64
	MileageMin *int64
	MileageMax *int64
	YearMin    *int
	YearMax    *int

	SortBy    string
	SortOrder string
}

// StatsFilters are the equality filters of the stats endpoint.
type StatsFilters struct {
	Brand        string
	Model        string
	Year         string
	Fuel         string
	Transmission string
	Seller       string
}

// CityFilters narrow the city selector as other filters change.
// Brand and Model are scalar here, unlike in SearchFilters.
type CityFilters struct {
	Brand         string
	Series        []string
	SubModel      string
	Model         string
	Fuels         []string
	Transmissions []string

	YearMin    *int
	YearMax    *int
	MileageMin *int64
	MileageMax *int64
	PriceMin   *int64
	PriceMax   *int64
}
