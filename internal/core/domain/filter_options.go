package domain

// ValueCount is a distinct value with the number of priced listings carrying it.
type ValueCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

type ModelOption struct {
	Model  string  `json:"model"`
	Brand  string  `json:"brand"`
	Series *string `json:"series"`
	Count  int64   `json:"count"`
}

type SeriesOption struct {
	Series string `json:"series"`
	Brand  string `json:"brand"`
	Count  int64  `json:"count"`
}

// FilterOptions lists the selectable values of every filter dimension.
// Tags are used for the cache encoding only.
type FilterOptions struct {
	Brands        []ValueCount   `json:"brands"`
	Models        []ModelOption  `json:"models"`
	Series        []SeriesOption `json:"series"`
	Years         []ValueCount   `json:"years"`
	Fuels         []ValueCount   `json:"fuels"`
	Transmissions []ValueCount   `json:"transmissions"`
	Sellers       []ValueCount   `json:"sellers"`
	Cities        []ValueCount   `json:"cities"`
}

const (
	FilterCitiesLimit  = 30
	DynamicCitiesLimit = 20
)
