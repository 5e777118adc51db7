package rest

import (
	"encoding/json"
	"time"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListingResponse is the client shape of one listing, shared by every
// endpoint that returns rows.
type ListingResponse struct {
	AdNumber *string     `json:"ilanNo"`
	Title    *string     `json:"title"`
	Brand    string      `json:"marka"`
	Model    string      `json:"model"`
	Series   *string     `json:"seri"`
	Year     interface{} `json:"yil"`
	Mileage  string      `json:"km"`
	Price    *int64      `json:"fiyat"`
	PriceStr string      `json:"fiyatStr"`

	Fuel         string  `json:"yakit"`
	Transmission string  `json:"vites"`
	Color        string  `json:"renk"`
	BodyType     *string `json:"kasaTipi"`
	EnginePower  *string `json:"motorGucu"`
	EngineSize   *string `json:"motorHacmi"`
	Drivetrain   *string `json:"cekis"`

	Seller   string  `json:"kimden"`
	TradeIn  *string `json:"takas"`
	Warranty *string `json:"garanti"`

	HeavyDamage *string `json:"agirHasar"`
	PlateOrigin *string `json:"plakaUyruk"`
	Condition   *string `json:"vehicleCondition"`

	Location *string `json:"location"`
	City     *string `json:"city"`

	PaintDamage       json.RawMessage `json:"paintDamage"`
	PaintedPartsCount *int32          `json:"paintedPartsCount"`
	ChangedPartsCount *int32          `json:"changedPartsCount"`
	TotalDamageAreas  *int32          `json:"totalDamageAreas"`

	FeatureCounts FeatureCountsResponse `json:"featureCounts"`
	Features      json.RawMessage       `json:"features"`
	Specs         json.RawMessage       `json:"specs"`

	URL        *string    `json:"url"`
	PostedAt   *string    `json:"ilanTarihi"`
	ScrapeDate *time.Time `json:"scrapeDate"`
}

type FeatureCountsResponse struct {
	Safety     *int32 `json:"guvenlik"`
	Interior   *int32 `json:"icDonanim"`
	Exterior   *int32 `json:"disDonanim"`
	Multimedia *int32 `json:"multimedya"`
}

type ListCarsResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Results []ListingResponse `json:"results"`
}

type StatsBody struct {
	TotalCount  int64 `json:"totalCount"`
	AvgPrice    int64 `json:"avgPrice"`
	MinPrice    int64 `json:"minPrice"`
	MaxPrice    int64 `json:"maxPrice"`
	MedianPrice int64 `json:"medianPrice"`
}

type StatsResponse struct {
	Success bool      `json:"success"`
	Stats   StatsBody `json:"stats"`
}

type PaginationResponse struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	PageSize    int  `json:"pageSize"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type SearchStatisticsResponse struct {
	AvgPrice int64 `json:"avgPrice"`
	MinPrice int64 `json:"minPrice"`
	MaxPrice int64 `json:"maxPrice"`
}

type SearchResponse struct {
	Success    bool                     `json:"success"`
	TotalCount int64                    `json:"totalCount"`
	Count      int                      `json:"count"`
	Pagination PaginationResponse       `json:"pagination"`
	Statistics SearchStatisticsResponse `json:"statistics"`
	Results    []ListingResponse        `json:"results"`
}

// --- filter options ---

type BrandOption struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

type ModelOptionResponse struct {
	Model  string  `json:"model"`
	Brand  string  `json:"brand"`
	Series *string `json:"seri"`
	Count  int64   `json:"count"`
}

type SeriesOptionResponse struct {
	Series string `json:"series"`
	Brand  string `json:"brand"`
	Count  int64  `json:"count"`
}

type YearOption struct {
	Year  interface{} `json:"year"`
	Count int64       `json:"count"`
}

type FuelOption struct {
	FuelType string `json:"fuel_type"`
	Count    int64  `json:"count"`
}

type TransmissionOption struct {
	Transmission string `json:"transmission"`
	Count        int64  `json:"count"`
}

type SellerOption struct {
	SellerType string `json:"seller_type"`
	Count      int64  `json:"count"`
}

type CityOption struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

type FiltersBody struct {
	Brands        []BrandOption          `json:"brands"`
	Models        []ModelOptionResponse  `json:"models"`
	Series        []SeriesOptionResponse `json:"series"`
	Years         []YearOption           `json:"years"`
	Fuels         []FuelOption           `json:"fuels"`
	Transmissions []TransmissionOption   `json:"transmissions"`
	Sellers       []SellerOption         `json:"sellers"`
	Cities        []CityOption           `json:"cities"`
}

type FiltersResponse struct {
	Success bool        `json:"success"`
	Filters FiltersBody `json:"filters"`
}

type CitiesResponse struct {
	Success bool         `json:"success"`
	Cities  []CityOption `json:"cities"`
}
