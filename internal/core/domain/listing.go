package domain

import "time"

// Listing is one scraped car advertisement as stored in the cars table.
// Every column may be NULL, so text columns are read as *string.
type Listing struct {
	ID           int64
	AdNumber     *string
	Title        *string
	Brand        *string
	Model        *string
	Series       *string
	Year         *string
	Mileage      *string
	PriceText    *string
	Fuel         *string
	Transmission *string
	Color        *string
	Seller       *string
	BodyType     *string
	EnginePower  *string
	EngineSize   *string
	Drivetrain   *string
	TradeIn      *string
	Warranty     *string
	HeavyDamage  *string
	PlateOrigin  *string
	Condition    *string
	Location     *string
	URL          *string

	// raw JSON text, possibly malformed
	SpecsJSON       *string
	FeaturesJSON    *string
	PaintDamageJSON *string

	PaintedPartsCount *int32
	ChangedPartsCount *int32
	TotalDamageAreas  *int32

	SafetyFeatures     *int32
	InteriorFeatures   *int32
	ExteriorFeatures   *int32
	MultimediaFeatures *int32

	PostedAt  *string
	ScrapedAt *time.Time
}
