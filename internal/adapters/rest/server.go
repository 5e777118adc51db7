package rest

import (
	"car-catalog-service/internal/core/port"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// spaMaxDepth is how many path segments a client-side route may have
// (brand plus six parameters).
const spaMaxDepth = 7

type ServerConfig struct {
	Port           string
	StaticPagePath string
	AllowedOrigins []string
}

// MetricsExporter observes requests and serves the scrape endpoint.
type MetricsExporter interface {
	RequestObserver
	Handler() http.Handler
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter wires the API, the static page and the middleware chain.
// metrics may be nil.
func NewRouter(cfg ServerConfig, handlers *CarHandler, metrics MetricsExporter, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger))
	if metrics != nil {
		r.Use(MetricsMiddleware(metrics))
	}
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/cars", func(r chi.Router) {
			r.Get("/", handlers.ListCars)
			r.Get("/stats", handlers.GetStats)
			r.Get("/filters", handlers.GetFilterOptions)
			r.Get("/search", handlers.SearchCars)
			r.Get("/cities", handlers.GetCities)
		})
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			WriteJSONError(w, http.StatusNotFound, "Not found")
		})
	})

	if metrics != nil {
		r.Handle("/metrics", metrics.Handler())
	}

	page := staticPage(cfg.StaticPagePath)
	r.Get("/", page)
	r.Get("/*", page)

	return r
}

// staticPage serves the single-page client for client-side routes.
func staticPage(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(segments) > spaMaxDepth {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}

func NewServer(cfg ServerConfig, handlers *CarHandler, metrics MetricsExporter, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, handlers, metrics, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
