package configs

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type RESTConfig struct {
	Port           string
	StaticPagePath string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL                 string
	MaxConns            int32
	MaxConnIdleTime     time.Duration
	ConnectTimeout      time.Duration
	HealthcheckInterval time.Duration
	HealthcheckFailures int
}

type RedisConfig struct {
	// URL is empty when the filter options cache is disabled.
	URL             string
	FiltersCacheTTL time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type AppConfig struct {
	AppName      string
	Rest         RESTConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Metrics      MetricsConfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
}

// LoadConfig reads the configuration from the environment, after loading
// envPath (or ./.env) if it exists.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v. Using process environment.\n", envPath, err)
	}

	env := &envReader{}
	cfg := &AppConfig{}

	cfg.AppName = env.String("APP_NAME", "car-catalog-service")

	cfg.Rest.Port = env.String("PORT", "3000")
	cfg.Rest.StaticPagePath = env.String("STATIC_PAGE_PATH", "car-analyzer-table.html")
	cfg.Rest.AllowedOrigins = splitList(env.String("CORS_ALLOWED_ORIGINS", "*"))

	cfg.Database.URL = env.String("DATABASE_URL", "")
	if cfg.Database.URL == "" {
		cfg.Database.URL = buildDatabaseURL(env)
	}
	cfg.Database.MaxConns = int32(env.Int("DB_MAX_CONNS", 20))
	cfg.Database.MaxConnIdleTime = env.Duration("DB_MAX_CONN_IDLE_TIME", 30*time.Second)
	cfg.Database.ConnectTimeout = env.Duration("DB_CONNECT_TIMEOUT", 5*time.Second)
	cfg.Database.HealthcheckInterval = env.Duration("DB_HEALTHCHECK_INTERVAL", 30*time.Second)
	cfg.Database.HealthcheckFailures = env.Int("DB_HEALTHCHECK_FAILURES", 3)

	cfg.Redis.URL = env.String("REDIS_URL", "")
	cfg.Redis.FiltersCacheTTL = env.Duration("FILTERS_CACHE_TTL", 5*time.Minute)

	cfg.Metrics.Enabled = env.Bool("METRICS_ENABLED", true)

	cfg.StdoutLogger.Level = env.String("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = env.Bool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = env.Bool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = env.String("FLUENTBIT_HOST", "")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = env.Int("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = env.String("FLUENTBIT_LOG_LEVEL", "info")
	}

	if cfg.Database.MaxConns < 1 {
		env.fail("DB_MAX_CONNS", strconv.Itoa(int(cfg.Database.MaxConns)), errors.New("must be at least 1"))
	}
	if cfg.Database.HealthcheckFailures < 1 {
		env.fail("DB_HEALTHCHECK_FAILURES", strconv.Itoa(cfg.Database.HealthcheckFailures), errors.New("must be at least 1"))
	}
	if cfg.Redis.URL != "" && cfg.Redis.FiltersCacheTTL <= 0 {
		env.fail("FILTERS_CACHE_TTL", cfg.Redis.FiltersCacheTTL.String(), errors.New("must be positive when REDIS_URL is set"))
	}

	if env.err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", env.err)
	}
	return cfg, nil
}

// buildDatabaseURL assembles a connection URL from the discrete DB_* variables.
func buildDatabaseURL(env *envReader) string {
	host := env.String("DB_HOST", "localhost")
	port := env.String("DB_PORT", "5432")

	u := url.URL{
		Scheme: "postgres",
		Host:   host + ":" + port,
		Path:   "/" + env.String("DB_NAME", "sahibinden_cars"),
	}
	user := env.String("DB_USER", "postgres")
	if password := env.String("DB_PASSWORD", ""); password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	u.RawQuery = url.Values{"sslmode": {env.String("DB_SSLMODE", "disable")}}.Encode()
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// envReader collects every malformed variable instead of stopping at the first.
type envReader struct {
	err error
}

func (e *envReader) fail(key, value string, err error) {
	e.err = errors.Join(e.err, fmt.Errorf("%s=%q: %w", key, value, err))
}

func (e *envReader) String(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (e *envReader) Int(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		e.fail(key, valueStr, err)
		return defaultValue
	}
	return value
}

func (e *envReader) Bool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		e.fail(key, valueStr, err)
		return defaultValue
	}
	return value
}

func (e *envReader) Duration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		e.fail(key, valueStr, err)
		return defaultValue
	}
	return value
}
