package rest

import (
	"car-catalog-service/internal/contextkeys"
	"car-catalog-service/internal/core/domain"
	"car-catalog-service/internal/core/port"
	"car-catalog-service/internal/core/port/usecases_port"
	"errors"
	"net/http"
)

type CarHandler struct {
	listCarsUC         usecases_port.ListCarsUseCase
	getStatsUC         usecases_port.GetStatsUseCase
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	searchCarsUC       usecases_port.SearchCarsUseCase
	getCitiesUC        usecases_port.GetCitiesUseCase
}

func NewCarHandler(listCarsUC usecases_port.ListCarsUseCase,
	getStatsUC usecases_port.GetStatsUseCase,
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	searchCarsUC usecases_port.SearchCarsUseCase,
	getCitiesUC usecases_port.GetCitiesUseCase) *CarHandler {
	return &CarHandler{
		listCarsUC:         listCarsUC,
		getStatsUC:         getStatsUC,
		getFilterOptionsUC: getFilterOptionsUC,
		searchCarsUC:       searchCarsUC,
		getCitiesUC:        getCitiesUC,
	}
}

// writeError answers 400 for bad client input and 500 with the raw message otherwise.
func writeError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) {
		logger.Warn("Rejected request parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Error("Use case failed", err, nil)
	WriteJSONError(w, http.StatusInternalServerError, err.Error())
}

// ListCars handles GET /api/cars
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListCars"})

	limit, err := parseListLimit(r)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	listings, err := h.listCarsUC.Execute(r.Context(), limit)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, ListCarsResponse{
		Success: true,
		Count:   len(listings),
		Results: shapeListings(listings),
	})
}

// GetStats handles GET /api/cars/stats
func (h *CarHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetStats"})

	stats, err := h.getStatsUC.Execute(r.Context(), parseStatsFilters(r))
	if err != nil {
		writeError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, StatsResponse{
		Success: true,
		Stats: StatsBody{
			TotalCount:  stats.TotalCount,
			AvgPrice:    stats.AvgPrice,
			MinPrice:    stats.MinPrice,
			MaxPrice:    stats.MaxPrice,
			MedianPrice: stats.MedianPrice,
		},
	})
}

// GetFilterOptions handles GET /api/cars/filters
func (h *CarHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFilterOptions"})

	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		writeError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, FiltersResponse{
		Success: true,
		Filters: shapeFilterOptions(options),
	})
}

// SearchCars handles GET /api/cars/search
func (h *CarHandler) SearchCars(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchCars"})

	filters, page, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"page":      page.Page,
		"page_size": page.PageSize,
		"filters":   filters,
	})
	handlerLogger.Debug("Processing search request", nil)

	result, err := h.searchCarsUC.Execute(r.Context(), filters, page)
	if err != nil {
		writeError(w, handlerLogger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Success:    true,
		TotalCount: result.TotalCount,
		Count:      len(result.Listings),
		Pagination: PaginationResponse{
			CurrentPage: result.Pagination.CurrentPage,
			TotalPages:  result.Pagination.TotalPages,
			PageSize:    result.Pagination.PageSize,
			HasNext:     result.Pagination.HasNext,
			HasPrev:     result.Pagination.HasPrev,
		},
		Statistics: SearchStatisticsResponse{
			AvgPrice: result.Stats.AvgPrice,
			MinPrice: result.Stats.MinPrice,
			MaxPrice: result.Stats.MaxPrice,
		},
		Results: shapeListings(result.Listings),
	})
}

// GetCities handles GET /api/cars/cities
func (h *CarHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCities"})

	filters, err := parseCityFilters(r)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	cities, err := h.getCitiesUC.Execute(r.Context(), filters)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, CitiesResponse{
		Success: true,
		Cities:  shapeCities(cities),
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "OK", Message: "Server is running"})
}
