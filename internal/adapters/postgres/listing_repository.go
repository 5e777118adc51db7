package postgres

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// listingColumns is scanned by scanListing; keep both in the same order.
// Columns of uncertain type are cast so that they always scan into *string.
const listingColumns = `
	id,
	CAST(ilan_no AS TEXT),
	title,
	marka,
	model,
	seri,
	CAST(yil AS TEXT),
	CAST(km AS TEXT),
	price,
	yakit_tipi,
	vites,
	renk,
	kimden,
	kasa_tipi,
	CAST(motor_gucu AS TEXT),
	CAST(motor_hacmi AS TEXT),
	cekis,
	CAST(takas AS TEXT),
	CAST(garanti AS TEXT),
	CAST(agir_hasar AS TEXT),
	plaka_uyruk,
	vehicle_condition,
	location_full,
	url,
	CAST(specs_json AS TEXT),
	CAST(features_json AS TEXT),
	CAST(paint_damage_json AS TEXT),
	CAST(painted_parts_count AS INTEGER),
	CAST(changed_parts_count AS INTEGER),
	CAST(total_damage_areas AS INTEGER),
	CAST(guvenlik_features AS INTEGER),
	CAST(ic_donanim_features AS INTEGER),
	CAST(dis_donanim_features AS INTEGER),
	CAST(multimedya_features AS INTEGER),
	CAST(ilan_tarihi AS TEXT),
	scraped_at`

const aggregateColumns = `
	COUNT(*),
	COALESCE(AVG(` + priceExpr + `), 0)::float8,
	COALESCE(MIN(` + priceExpr + `), 0),
	COALESCE(MAX(` + priceExpr + `), 0)`

const medianColumn = `
	COALESCE(PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY ` + priceExpr + `), 0)::float8`

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) (*ListingRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingRepository{pool: pool}, nil
}

func buildListRecentQuery(limit int) (string, []interface{}) {
	where := compileWhere([]predicate{cond(pricedCondition)})
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY scraped_at DESC, id ASC LIMIT $%d",
		listingColumns, carsTable, where.sql, where.next())
	return query, append(where.args, limit)
}

func buildStatsQuery(f domain.StatsFilters) (string, []interface{}) {
	where := compileWhere(statsPredicates(f))
	query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s", aggregateColumns, medianColumn, carsTable, where.sql)
	return query, where.args
}

func buildSearchAggregatesQuery(f domain.SearchFilters) (string, []interface{}) {
	where := compileWhere(searchPredicates(f))
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", aggregateColumns, carsTable, where.sql)
	return query, where.args
}

func buildSearchPageQuery(f domain.SearchFilters, page domain.PageRequest) (string, []interface{}) {
	where := compileWhere(searchPredicates(f))
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		listingColumns, carsTable, where.sql, orderBy(f.SortBy, f.SortOrder), where.next(), where.next()+1)
	return query, append(where.args, page.PageSize, page.Offset())
}

func (r *ListingRepository) ListRecent(ctx context.Context, limit int) ([]domain.Listing, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "ListRecent",
	})

	query, args := buildListRecentQuery(limit)
	listings, err := r.queryListings(ctx, query, args, limit)
	if err != nil {
		repoLogger.Error("Failed to list recent listings", err, port.Fields{"query": query})
		return nil, err
	}

	repoLogger.Debug("Listings fetched", port.Fields{"count": len(listings)})
	return listings, nil
}

func (r *ListingRepository) GetPriceStats(ctx context.Context, filters domain.StatsFilters) (*domain.PriceAggregates, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "GetPriceStats",
	})

	query, args := buildStatsQuery(filters)

	var agg domain.PriceAggregates
	err := r.pool.QueryRow(ctx, query, args...).Scan(&agg.TotalCount, &agg.AvgPrice, &agg.MinPrice, &agg.MaxPrice, &agg.MedianPrice)
	if err != nil {
		repoLogger.Error("Failed to aggregate prices", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to aggregate prices: %w", err)
	}
	return &agg, nil
}

func (r *ListingRepository) SearchAggregates(ctx context.Context, filters domain.SearchFilters) (*domain.PriceAggregates, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "SearchAggregates",
	})

	query, args := buildSearchAggregatesQuery(filters)

	var agg domain.PriceAggregates
	err := r.pool.QueryRow(ctx, query, args...).Scan(&agg.TotalCount, &agg.AvgPrice, &agg.MinPrice, &agg.MaxPrice)
	if err != nil {
		repoLogger.Error("Failed to count listings with filters", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to count listings with filters: %w", err)
	}

	repoLogger.Debug("Total listings found", port.Fields{"total_count": agg.TotalCount})
	return &agg, nil
}

func (r *ListingRepository) SearchPage(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) ([]domain.Listing, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "SearchPage",
		"limit":     page.PageSize,
		"offset":    page.Offset(),
	})

	query, args := buildSearchPageQuery(filters, page)
	listings, err := r.queryListings(ctx, query, args, page.PageSize)
	if err != nil {
		repoLogger.Error("Failed to find listings with filters", err, port.Fields{"query": query})
		return nil, err
	}

	repoLogger.Debug("Successfully found listings for page", port.Fields{"count": len(listings)})
	return listings, nil
}

func (r *ListingRepository) queryListings(ctx context.Context, query string, args []interface{}, capacity int) ([]domain.Listing, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0, capacity)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during listings rows iteration: %w", err)
	}
	return listings, nil
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.AdNumber, &l.Title, &l.Brand, &l.Model, &l.Series, &l.Year, &l.Mileage, &l.PriceText,
		&l.Fuel, &l.Transmission, &l.Color, &l.Seller, &l.BodyType, &l.EnginePower, &l.EngineSize,
		&l.Drivetrain, &l.TradeIn, &l.Warranty, &l.HeavyDamage, &l.PlateOrigin, &l.Condition,
		&l.Location, &l.URL, &l.SpecsJSON, &l.FeaturesJSON, &l.PaintDamageJSON,
		&l.PaintedPartsCount, &l.ChangedPartsCount, &l.TotalDamageAreas,
		&l.SafetyFeatures, &l.InteriorFeatures, &l.ExteriorFeatures, &l.MultimediaFeatures,
		&l.PostedAt, &l.ScrapedAt,
	)
	return l, err
}
