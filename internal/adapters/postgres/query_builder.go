package postgres

import (
	"car-catalog-service/internal/core/domain"
	"fmt"
	"strings"
)

const carsTable = "cars"

// Derived columns. Every filter, sort and aggregate goes through these so that
// a value is derived the same way everywhere.
const (
	// "123.456 TL" -> 123456, same transformation as domain.ParsePrice
	priceExpr   = `CAST(REPLACE(REPLACE(price, '.', ''), ' TL', '') AS BIGINT)`
	yearExpr    = `CAST(yil AS INTEGER)`
	mileageExpr = `CAST(REPLACE(CAST(km AS TEXT), '.', '') AS BIGINT)`
	// first "/"-segment, same as domain.DeriveCity
	cityExpr = `TRIM(SPLIT_PART(location_full, '/', 1))`

	seriesGroupExpr = `CASE
			WHEN seri LIKE 'A1%' THEN 'A1'
			WHEN seri LIKE 'A2%' THEN 'A2'
			WHEN seri LIKE 'A3%' THEN 'A3'
			WHEN seri LIKE 'A4%' THEN 'A4'
			WHEN seri LIKE 'A5%' THEN 'A5'
			WHEN seri LIKE 'A6%' THEN 'A6'
			WHEN seri LIKE 'A7%' THEN 'A7'
			WHEN seri LIKE 'A8%' THEN 'A8'
			WHEN seri LIKE 'Q%' THEN SUBSTRING(seri FROM 1 FOR 2)
			ELSE seri
		END`
)

const (
	pricedCondition  = `price IS NOT NULL AND price != ''`
	locatedCondition = `location_full IS NOT NULL AND location_full != ''`
)

// predicate is one boolean SQL fragment. Each "?" in expr is bound, in order,
// to the matching element of args.
type predicate struct {
	expr string
	args []interface{}
}

func cond(expr string, args ...interface{}) predicate {
	return predicate{expr: expr, args: args}
}

// whereClause is a compiled conjunction: sql uses $1..$n and args[i] is bound to $(i+1).
type whereClause struct {
	sql  string
	args []interface{}
}

// compileWhere ANDs preds together and numbers their placeholders in order.
// It panics if a predicate's placeholders and args disagree, which is a bug in
// the predicate, never a property of user input.
func compileWhere(preds []predicate) whereClause {
	var sb strings.Builder
	args := make([]interface{}, 0, len(preds))

	for i, p := range preds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		n := 0
		for _, r := range p.expr {
			if r == '?' {
				n++
				fmt.Fprintf(&sb, "$%d", len(args)+n)
				continue
			}
			sb.WriteRune(r)
		}
		if n != len(p.args) {
			panic(fmt.Sprintf("predicate %q has %d placeholders but %d args", p.expr, n, len(p.args)))
		}
		args = append(args, p.args...)
	}

	return whereClause{sql: sb.String(), args: args}
}

// next returns the number of the first placeholder after the clause.
func (w whereClause) next() int {
	return len(w.args) + 1
}

// likeEscaper makes user text literal inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// oneOf is equality for a single value and set membership for several.
func oneOf[T any](column string, values []T) predicate {
	if len(values) == 1 {
		return cond(column+" = ?", values[0])
	}
	return cond(column+" = ANY(?)", values)
}

func int64Range(column string, min, max *int64) []predicate {
	var preds []predicate
	if min != nil {
		preds = append(preds, cond(column+" >= ?", *min))
	}
	if max != nil {
		preds = append(preds, cond(column+" <= ?", *max))
	}
	return preds
}

func intRange(column string, min, max *int) []predicate {
	var preds []predicate
	if min != nil {
		preds = append(preds, cond(column+" >= ?", *min))
	}
	if max != nil {
		preds = append(preds, cond(column+" <= ?", *max))
	}
	return preds
}

// singleSeries returns the series when exactly one was selected.
func singleSeries(series []string) string {
	if len(series) == 1 {
		return series[0]
	}
	return ""
}

// subModelPredicate narrows the model text within a series. Engine-coded
// series match the descriptor anywhere in the model, case-insensitively;
// other series match "<series> <subModel>" (body style right after the series).
func subModelPredicate(series []string, subModel string) predicate {
	s := singleSeries(series)
	switch {
	case s == domain.EngineCodedSeries:
		return cond("model ILIKE ?", containsPattern(subModel))
	case s != "":
		return cond("model LIKE ?", containsPattern(s+" "+subModel))
	default:
		return cond("model LIKE ?", containsPattern(subModel))
	}
}

func modelPredicate(series []string, models []string) predicate {
	if singleSeries(series) == domain.EngineCodedSeries {
		patterns := make([]string, len(models))
		for i, m := range models {
			patterns[i] = containsPattern(m)
		}
		return cond("model LIKE ANY(?)", patterns)
	}
	return oneOf("model", models)
}

// cityPredicate accepts both raw locations and derived cities.
func cityPredicate(cities []string) predicate {
	if len(cities) == 1 {
		return cond("(location_full = ? OR "+cityExpr+" = ?)", cities[0], cities[0])
	}
	return cond("(location_full = ANY(?) OR "+cityExpr+" = ANY(?))", cities, cities)
}

// searchPredicates translates search filters; the first predicate is always the priced condition.
func searchPredicates(f domain.SearchFilters) []predicate {
	preds := []predicate{cond(pricedCondition)}

	if f.Search != "" {
		p := containsPattern(f.Search)
		preds = append(preds, cond("(marka ILIKE ? OR model ILIKE ? OR CAST(yil AS TEXT) LIKE ?)", p, p, p))
	}
	if len(f.Brands) > 0 {
		preds = append(preds, oneOf("marka", f.Brands))
	}
	if len(f.Series) > 0 {
		preds = append(preds, oneOf("seri", f.Series))
	}
	if f.SubModel != "" {
		preds = append(preds, subModelPredicate(f.Series, f.SubModel))
	}
	if len(f.Models) > 0 {
		preds = append(preds, modelPredicate(f.Series, f.Models))
	}
	if len(f.Years) > 0 {
		preds = append(preds, oneOf(yearExpr, f.Years))
	}
	if len(f.Fuels) > 0 {
		preds = append(preds, oneOf("yakit_tipi", f.Fuels))
	}
	if len(f.Transmissions) > 0 {
		preds = append(preds, oneOf("vites", f.Transmissions))
	}
	if len(f.Sellers) > 0 {
		preds = append(preds, oneOf("kimden", f.Sellers))
	}
	if len(f.Cities) > 0 {
		preds = append(preds, cityPredicate(f.Cities))
	}

	preds = append(preds, int64Range(priceExpr, f.PriceMin, f.PriceMax)...)
	preds = append(preds, int64Range(mileageExpr, f.MileageMin, f.MileageMax)...)
	preds = append(preds, intRange(yearExpr, f.YearMin, f.YearMax)...)

	return preds
}

func statsPredicates(f domain.StatsFilters) []predicate {
	preds := []predicate{cond(pricedCondition)}

	equal := []struct {
		column string
		value  string
	}{
		{"marka", f.Brand},
		{"model", f.Model},
		{"CAST(yil AS TEXT)", f.Year},
		{"yakit_tipi", f.Fuel},
		{"vites", f.Transmission},
		{"kimden", f.Seller},
	}
	for _, e := range equal {
		if e.value != "" {
			preds = append(preds, cond(e.column+" = ?", e.value))
		}
	}
	return preds
}

func cityFilterPredicates(f domain.CityFilters) []predicate {
	preds := []predicate{cond(locatedCondition), cond(pricedCondition)}

	if f.Brand != "" {
		preds = append(preds, cond("marka = ?", f.Brand))
	}
	if len(f.Series) > 0 {
		preds = append(preds, oneOf("seri", f.Series))
	}
	if f.SubModel != "" {
		preds = append(preds, subModelPredicate(f.Series, f.SubModel))
	}
	if f.Model != "" {
		preds = append(preds, cond("model = ?", f.Model))
	}

	preds = append(preds, intRange(yearExpr, f.YearMin, f.YearMax)...)
	preds = append(preds, int64Range(mileageExpr, f.MileageMin, f.MileageMax)...)
	preds = append(preds, int64Range(priceExpr, f.PriceMin, f.PriceMax)...)

	if len(f.Fuels) > 0 {
		preds = append(preds, oneOf("yakit_tipi", f.Fuels))
	}
	if len(f.Transmissions) > 0 {
		preds = append(preds, oneOf("vites", f.Transmissions))
	}
	return preds
}

var sortColumns = map[string]string{
	"price":      priceExpr,
	"year":       yearExpr,
	"yil":        yearExpr,
	"km":         mileageExpr,
	"scraped_at": "scraped_at",
}

// orderBy resolves the sort key against the allow-list. Unknown keys sort by
// scrape time, newest first, whatever the requested order. id keeps pages stable.
func orderBy(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		return "scraped_at DESC, id ASC"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "ASC") {
		direction = "ASC"
	}
	return column + " " + direction + ", id ASC"
}
