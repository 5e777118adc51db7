package domain

import (
	"strconv"
	"strings"
)

// EngineCodedSeries is the series whose model names embed the engine
// ("A1 Sportback 1.4 TFSI"), so its sub-models are engine descriptors.
const EngineCodedSeries = "A1"

const (
	priceThousandsSeparator = "."
	priceCurrencySuffix     = " TL"
)

// ParsePrice turns "123.456 TL" into 123456. It mirrors the SQL price
// expression used for filtering, sorting and aggregation.
func ParsePrice(text string) (int64, bool) {
	digits := strings.ReplaceAll(text, priceThousandsSeparator, "")
	digits = strings.ReplaceAll(digits, priceCurrencySuffix, "")
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DeriveCity returns the trimmed first "/"-segment of a location.
func DeriveCity(location string) string {
	city, _, _ := strings.Cut(location, "/")
	return strings.TrimSpace(city)
}
