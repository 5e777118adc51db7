package internal

import (
	logger_adapter "car-catalog-service/internal/adapters/logger"
	"car-catalog-service/internal/adapters/metrics"
	postgres_adapter "car-catalog-service/internal/adapters/postgres"
	"car-catalog-service/internal/adapters/rediscache"
	"car-catalog-service/internal/adapters/rest"
	"car-catalog-service/internal/configs"
	"car-catalog-service/internal/core/port"
	"car-catalog-service/internal/core/usecase"
	"car-catalog-service/pkg/fluentlogger"
	"car-catalog-service/pkg/postgres"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	apiServer    *rest.Server
	watchdog     *postgres_adapter.Watchdog
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp is the composition root: it builds every dependency and wires them together.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- loggers ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- storage ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL:     appConfig.Database.URL,
		MaxConns:        appConfig.Database.MaxConns,
		MaxConnIdleTime: appConfig.Database.MaxConnIdleTime,
		ConnectTimeout:  appConfig.Database.ConnectTimeout,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", port.Fields{"max_conns": appConfig.Database.MaxConns})

	listingRepository, err := postgres_adapter.NewListingRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing repository: %w", err)
	}
	filterRepository, err := postgres_adapter.NewFilterRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create filter repository: %w", err)
	}

	var appMetrics *metrics.Metrics
	if appConfig.Metrics.Enabled {
		appMetrics = metrics.New()
		appMetrics.RegisterPool(dbPool)
		appLogger.Info("Prometheus metrics enabled", nil)
	}

	// The cache stays a nil interface when disabled; a typed nil pointer would not compare equal to nil.
	var filtersCache port.FilterOptionsCachePort
	redisClient := newRedisClient(appConfig.Redis, appLogger)
	if redisClient != nil {
		var observer rediscache.LookupObserver
		if appMetrics != nil {
			observer = appMetrics
		}
		cache, err := rediscache.NewFilterOptionsCache(redisClient, appConfig.Redis.FiltersCacheTTL, observer)
		if err != nil {
			redisClient.Close()
			dbPool.Close()
			return nil, fmt.Errorf("failed to create filter options cache: %w", err)
		}
		filtersCache = cache
		appLogger.Info("Filter options cache enabled", port.Fields{"ttl": appConfig.Redis.FiltersCacheTTL.String()})
	}

	// --- use cases ---
	listCarsUseCase := usecase.NewListCarsUseCase(listingRepository)
	getStatsUseCase := usecase.NewGetStatsUseCase(listingRepository)
	searchCarsUseCase := usecase.NewSearchCarsUseCase(listingRepository)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(filterRepository, filtersCache)
	getCitiesUseCase := usecase.NewGetCitiesUseCase(filterRepository)
	appLogger.Info("All use cases initialized.", nil)

	// --- REST ---
	carHandler := rest.NewCarHandler(listCarsUseCase, getStatsUseCase, getFilterOptionsUseCase, searchCarsUseCase, getCitiesUseCase)

	var exporter rest.MetricsExporter
	if appMetrics != nil {
		exporter = appMetrics
	}
	apiServer := rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.Port,
		StaticPagePath: appConfig.Rest.StaticPagePath,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}, carHandler, exporter, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	var watchdog *postgres_adapter.Watchdog
	if appConfig.Database.HealthcheckInterval > 0 {
		watchdog = postgres_adapter.NewWatchdog(dbPool, appConfig.Database.HealthcheckInterval, appConfig.Database.HealthcheckFailures, baseLogger)
	}

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		redisClient:  redisClient,
		apiServer:    apiServer,
		watchdog:     watchdog,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// newRedisClient returns nil when the cache is disabled or redis is unreachable;
// the service then reads filter options straight from the database.
func newRedisClient(cfg configs.RedisConfig, logger port.LoggerPort) *redis.Client {
	if cfg.URL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		logger.Error("Invalid REDIS_URL, filter options cache disabled", err, nil)
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis is unreachable, filter options cache disabled", port.Fields{"error": err.Error()})
		client.Close()
		return nil
	}
	return client
}

// Run starts the server and the database watchdog and blocks until a signal
// arrives or a critical component fails. The latter is returned as an error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	var wg sync.WaitGroup
	errorsCh := make(chan error, 2)

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}

		cancelApp()
		wg.Wait()

		if a.redisClient != nil {
			if err := a.redisClient.Close(); err != nil {
				a.logger.Error("Error closing redis client", err, nil)
			}
		}
		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down.", nil)
		closeFluent(a.fluentClient)
	}()

	a.logger.Info("Application is starting...", nil)

	if a.watchdog != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.watchdog.Run(appCtx); err != nil {
				errorsCh <- err
			}
		}()
	}

	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or component failure...", port.Fields{"port": a.config.Rest.Port})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		// fluent may already be gone, so report on stdout
		fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
