package rest

import (
	"car-catalog-service/internal/core/domain"
	"encoding/json"
	"strconv"
	"strings"
)

// Placeholders for columns the client always expects to be filled.
const (
	unknownValue  = "Bilinmiyor"
	unpricedValue = "Belirtilmemiş"
)

var emptyObject = json.RawMessage(`{}`)

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// jsonObjectOrEmpty passes stored JSON through unchanged and replaces
// absent, null or malformed text with {}.
func jsonObjectOrEmpty(raw *string) json.RawMessage {
	if raw == nil {
		return emptyObject
	}
	text := strings.TrimSpace(*raw)
	if text == "" || text == "null" || !json.Valid([]byte(text)) {
		return emptyObject
	}
	return json.RawMessage(text)
}

// numberOrText keeps integral values numeric in the JSON output.
func numberOrText(s string) interface{} {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	return s
}

func shapeListing(l domain.Listing) ListingResponse {
	var price *int64
	if l.PriceText != nil {
		if v, ok := domain.ParsePrice(*l.PriceText); ok {
			price = &v
		}
	}

	var city *string
	if l.Location != nil && *l.Location != "" {
		c := domain.DeriveCity(*l.Location)
		city = &c
	}

	var year interface{} = unknownValue
	if l.Year != nil && *l.Year != "" {
		year = numberOrText(*l.Year)
	}

	return ListingResponse{
		AdNumber: l.AdNumber,
		Title:    l.Title,
		Brand:    orDefault(l.Brand, unknownValue),
		Model:    orDefault(l.Model, unknownValue),
		Series:   l.Series,
		Year:     year,
		Mileage:  orDefault(l.Mileage, unknownValue),
		Price:    price,
		PriceStr: orDefault(l.PriceText, unpricedValue),

		Fuel:         orDefault(l.Fuel, unknownValue),
		Transmission: orDefault(l.Transmission, unknownValue),
		Color:        orDefault(l.Color, unknownValue),
		BodyType:     l.BodyType,
		EnginePower:  l.EnginePower,
		EngineSize:   l.EngineSize,
		Drivetrain:   l.Drivetrain,

		Seller:   orDefault(l.Seller, unknownValue),
		TradeIn:  l.TradeIn,
		Warranty: l.Warranty,

		HeavyDamage: l.HeavyDamage,
		PlateOrigin: l.PlateOrigin,
		Condition:   l.Condition,

		Location: l.Location,
		City:     city,

		PaintDamage:       jsonObjectOrEmpty(l.PaintDamageJSON),
		PaintedPartsCount: l.PaintedPartsCount,
		ChangedPartsCount: l.ChangedPartsCount,
		TotalDamageAreas:  l.TotalDamageAreas,

		FeatureCounts: FeatureCountsResponse{
			Safety:     l.SafetyFeatures,
			Interior:   l.InteriorFeatures,
			Exterior:   l.ExteriorFeatures,
			Multimedia: l.MultimediaFeatures,
		},
		Features: jsonObjectOrEmpty(l.FeaturesJSON),
		Specs:    jsonObjectOrEmpty(l.SpecsJSON),

		URL:        l.URL,
		PostedAt:   l.PostedAt,
		ScrapeDate: l.ScrapedAt,
	}
}

func shapeListings(listings []domain.Listing) []ListingResponse {
	out := make([]ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = shapeListing(l)
	}
	return out
}

func shapeCities(values []domain.ValueCount) []CityOption {
	out := make([]CityOption, len(values))
	for i, v := range values {
		out[i] = CityOption{City: v.Value, Count: v.Count}
	}
	return out
}

func shapeFilterOptions(o *domain.FilterOptions) FiltersBody {
	body := FiltersBody{
		Brands:        make([]BrandOption, len(o.Brands)),
		Models:        make([]ModelOptionResponse, len(o.Models)),
		Series:        make([]SeriesOptionResponse, len(o.Series)),
		Years:         make([]YearOption, len(o.Years)),
		Fuels:         make([]FuelOption, len(o.Fuels)),
		Transmissions: make([]TransmissionOption, len(o.Transmissions)),
		Sellers:       make([]SellerOption, len(o.Sellers)),
		Cities:        shapeCities(o.Cities),
	}

	for i, v := range o.Brands {
		body.Brands[i] = BrandOption{Brand: v.Value, Count: v.Count}
	}
	for i, m := range o.Models {
		body.Models[i] = ModelOptionResponse{Model: m.Model, Brand: m.Brand, Series: m.Series, Count: m.Count}
	}
	for i, s := range o.Series {
		body.Series[i] = SeriesOptionResponse{Series: s.Series, Brand: s.Brand, Count: s.Count}
	}
	for i, v := range o.Years {
		body.Years[i] = YearOption{Year: numberOrText(v.Value), Count: v.Count}
	}
	for i, v := range o.Fuels {
		body.Fuels[i] = FuelOption{FuelType: v.Value, Count: v.Count}
	}
	for i, v := range o.Transmissions {
		body.Transmissions[i] = TransmissionOption{Transmission: v.Value, Count: v.Count}
	}
	for i, v := range o.Sellers {
		body.Sellers[i] = SellerOption{SellerType: v.Value, Count: v.Count}
	}
	return body
}
