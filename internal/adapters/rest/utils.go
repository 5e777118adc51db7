package rest

import (
	"car-catalog-service/internal/core/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WriteJSONError sends {"error": message} with the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// ParamError is a query parameter that could not be turned into a filter value.
type ParamError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q: %s", e.Value, e.Param, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return domain.ErrInvalidParameter
}

const (
	defaultListLimit = 1000
	maxListLimit     = 5000
)

// queryParser reads typed values out of a query string. The first failure is
// kept in err and later reads become no-ops, so a handler checks err once.
type queryParser struct {
	query url.Values
	err   error
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{query: r.URL.Query()}
}

func (p *queryParser) fail(name, value, reason string) {
	if p.err == nil {
		p.err = &ParamError{Param: name, Value: value, Reason: reason}
	}
}

// normalize trims the value and composes it to NFC so that "İ" typed as
// I + combining dot matches the stored text.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (p *queryParser) str(name string) string {
	return normalize(p.query.Get(name))
}

// list accepts both "a,b" and repeated "name=a&name=b". Empty items are dropped.
func (p *queryParser) list(name string) []string {
	var out []string
	for _, raw := range p.query[name] {
		for _, item := range strings.Split(raw, ",") {
			if v := normalize(item); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func (p *queryParser) intList(name string) []int {
	items := p.list(name)
	if len(items) == 0 || p.err != nil {
		return nil
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil {
			p.fail(name, item, "not an integer")
			return nil
		}
		out = append(out, v)
	}
	return out
}

// bound parses an optional non-negative inclusive bound.
func (p *queryParser) bound(name string) *int64 {
	raw := p.str(name)
	if raw == "" || p.err != nil {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(name, raw, "not an integer")
		return nil
	}
	if v < 0 {
		p.fail(name, raw, "must not be negative")
		return nil
	}
	return &v
}

func (p *queryParser) intBound(name string) *int {
	v := p.bound(name)
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

// positive parses an optional integer in [1, max], returning def when absent.
func (p *queryParser) positive(name string, def, max int) int {
	raw := p.str(name)
	if raw == "" || p.err != nil {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw, "not an integer")
		return def
	}
	if v < 1 {
		p.fail(name, raw, "must be at least 1")
		return def
	}
	if v > max {
		p.fail(name, raw, fmt.Sprintf("must be at most %d", max))
		return def
	}
	return v
}

func parseListLimit(r *http.Request) (int, error) {
	p := newQueryParser(r)
	limit := p.positive("limit", defaultListLimit, maxListLimit)
	return limit, p.err
}

func parseStatsFilters(r *http.Request) domain.StatsFilters {
	p := newQueryParser(r)
	return domain.StatsFilters{
		Brand:        p.str("brand"),
		Model:        p.str("model"),
		Year:         p.str("year"),
		Fuel:         p.str("fuel"),
		Transmission: p.str("transmission"),
		Seller:       p.str("seller"),
	}
}

func parseSearchRequest(r *http.Request) (domain.SearchFilters, domain.PageRequest, error) {
	p := newQueryParser(r)

	sortBy := p.str("sortBy")
	if sortBy == "" {
		sortBy = "price"
	}
	sortOrder := strings.ToUpper(p.str("sortOrder"))
	if sortOrder == "" {
		sortOrder = "ASC"
	}

	filters := domain.SearchFilters{
		Search:        p.str("search"),
		Brands:        p.list("brand"),
		Series:        p.list("series"),
		SubModel:      p.str("subModel"),
		Models:        p.list("model"),
		Years:         p.intList("year"),
		Fuels:         p.list("fuel"),
		Transmissions: p.list("transmission"),
		Sellers:       p.list("seller"),
		Cities:        p.list("city"),
		PriceMin:      p.bound("minPrice"),
		PriceMax:      p.bound("maxPrice"),
		MileageMin:    p.bound("minKm"),
		MileageMax:    p.bound("maxKm"),
		YearMin:       p.intBound("yearMin"),
		YearMax:       p.intBound("yearMax"),
		SortBy:        sortBy,
		SortOrder:     sortOrder,
	}
	page := domain.PageRequest{
		Page:     p.positive("page", domain.DefaultPage, maxPageNumber),
		PageSize: p.positive("pageSize", domain.DefaultPageSize, domain.MaxPageSize),
	}
	return filters, page, p.err
}

// maxPageNumber keeps offset arithmetic far from overflow.
const maxPageNumber = 1_000_000

func parseCityFilters(r *http.Request) (domain.CityFilters, error) {
	p := newQueryParser(r)
	filters := domain.CityFilters{
		Brand:         p.str("brand"),
		Series:        p.list("series"),
		SubModel:      p.str("subModel"),
		Model:         p.str("model"),
		Fuels:         p.list("fuel"),
		Transmissions: p.list("transmission"),
		YearMin:       p.intBound("yearMin"),
		YearMax:       p.intBound("yearMax"),
		MileageMin:    p.bound("kmMin"),
		MileageMax:    p.bound("kmMax"),
		PriceMin:      p.bound("priceMin"),
		PriceMax:      p.bound("priceMax"),
	}
	return filters, p.err
}
