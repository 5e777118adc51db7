package postgres

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FilterRepository struct {
	pool *pgxpool.Pool
}

func NewFilterRepository(pool *pgxpool.Pool) (*FilterRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FilterRepository{pool: pool}, nil
}

// distinctCountsQuery groups priced listings by one column.
func distinctCountsQuery(column, orderDirection string) string {
	return fmt.Sprintf(`
		SELECT CAST(%[1]s AS TEXT), COUNT(*)
		FROM %[2]s
		WHERE %[1]s IS NOT NULL AND %[3]s
		GROUP BY %[1]s
		ORDER BY %[1]s %[4]s`, column, carsTable, pricedCondition, orderDirection)
}

var (
	modelsQuery = fmt.Sprintf(`
		SELECT model, COALESCE(marka, ''), seri, COUNT(*)
		FROM %s
		WHERE model IS NOT NULL AND %s
		GROUP BY model, marka, seri
		ORDER BY marka, seri, model`, carsTable, pricedCondition)

	seriesGroupsQuery = fmt.Sprintf(`
		SELECT %s AS series_group, COALESCE(marka, ''), COUNT(*)
		FROM %s
		WHERE seri IS NOT NULL AND seri != '' AND %s
		GROUP BY 1, 2
		ORDER BY 2, 1`, seriesGroupExpr, carsTable, pricedCondition)
)

func buildTopCitiesQuery(limit int) (string, []interface{}) {
	return buildCitiesQuery(domain.CityFilters{}, limit)
}

// buildCitiesQuery orders by count, ties broken alphabetically.
func buildCitiesQuery(f domain.CityFilters, limit int) (string, []interface{}) {
	where := compileWhere(cityFilterPredicates(f))
	query := fmt.Sprintf(`
		SELECT %s AS city, COUNT(*) AS count
		FROM %s
		WHERE %s
		GROUP BY 1
		ORDER BY 2 DESC, 1 ASC
		LIMIT $%d`, cityExpr, carsTable, where.sql, where.next())
	return query, append(where.args, limit)
}

func (a *FilterRepository) GetBrands(ctx context.Context) ([]domain.ValueCount, error) {
	return a.queryValueCounts(ctx, "GetBrands", distinctCountsQuery("marka", "ASC"))
}

func (a *FilterRepository) GetYears(ctx context.Context) ([]domain.ValueCount, error) {
	return a.queryValueCounts(ctx, "GetYears", distinctCountsQuery("yil", "DESC"))
}

func (a *FilterRepository) GetFuels(ctx context.Context) ([]domain.ValueCount, error) {
	return a.queryValueCounts(ctx, "GetFuels", distinctCountsQuery("yakit_tipi", "ASC"))
}

func (a *FilterRepository) GetTransmissions(ctx context.Context) ([]domain.ValueCount, error) {
	return a.queryValueCounts(ctx, "GetTransmissions", distinctCountsQuery("vites", "ASC"))
}

func (a *FilterRepository) GetSellers(ctx context.Context) ([]domain.ValueCount, error) {
	return a.queryValueCounts(ctx, "GetSellers", distinctCountsQuery("kimden", "ASC"))
}

func (a *FilterRepository) GetTopCities(ctx context.Context, limit int) ([]domain.ValueCount, error) {
	query, args := buildTopCitiesQuery(limit)
	return a.queryValueCounts(ctx, "GetTopCities", query, args...)
}

func (a *FilterRepository) GetCities(ctx context.Context, filters domain.CityFilters, limit int) ([]domain.ValueCount, error) {
	query, args := buildCitiesQuery(filters, limit)
	return a.queryValueCounts(ctx, "GetCities", query, args...)
}

func (a *FilterRepository) GetModels(ctx context.Context) ([]domain.ModelOption, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FilterRepository",
		"method":    "GetModels",
	})

	rows, err := a.pool.Query(ctx, modelsQuery)
	if err != nil {
		repoLogger.Error("Failed to query models", err, nil)
		return nil, fmt.Errorf("failed to query models: %w", err)
	}
	defer rows.Close()

	models := make([]domain.ModelOption, 0)
	for rows.Next() {
		var m domain.ModelOption
		if err := rows.Scan(&m.Model, &m.Brand, &m.Series, &m.Count); err != nil {
			return nil, fmt.Errorf("failed to scan model option: %w", err)
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (a *FilterRepository) GetSeriesGroups(ctx context.Context) ([]domain.SeriesOption, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FilterRepository",
		"method":    "GetSeriesGroups",
	})

	rows, err := a.pool.Query(ctx, seriesGroupsQuery)
	if err != nil {
		repoLogger.Error("Failed to query series groups", err, nil)
		return nil, fmt.Errorf("failed to query series groups: %w", err)
	}
	defer rows.Close()

	series := make([]domain.SeriesOption, 0)
	for rows.Next() {
		var s domain.SeriesOption
		if err := rows.Scan(&s.Series, &s.Brand, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan series option: %w", err)
		}
		series = append(series, s)
	}
	return series, rows.Err()
}

func (a *FilterRepository) queryValueCounts(ctx context.Context, method, query string, args ...interface{}) ([]domain.ValueCount, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FilterRepository",
		"method":    method,
	})

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query distinct values", err, port.Fields{"query": query})
		return nil, fmt.Errorf("%s: failed to query distinct values: %w", method, err)
	}
	defer rows.Close()

	values := make([]domain.ValueCount, 0)
	for rows.Next() {
		var v domain.ValueCount
		if err := rows.Scan(&v.Value, &v.Count); err != nil {
			return nil, fmt.Errorf("%s: failed to scan value count: %w", method, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration failed: %w", method, err)
	}

	repoLogger.Debug("Distinct values fetched", port.Fields{"count": len(values)})
	return values, nil
}
