package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MLR-5819/FSND-Fyyur/internal/cache"
	"github.com/MLR-5819/FSND-Fyyur/internal/config"
	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/handlers"
	"github.com/MLR-5819/FSND-Fyyur/internal/messaging"
	"github.com/MLR-5819/FSND-Fyyur/internal/middleware"
	"github.com/MLR-5819/FSND-Fyyur/internal/search"
	"github.com/MLR-5819/FSND-Fyyur/internal/service"
	"github.com/MLR-5819/FSND-Fyyur/internal/web"
)

const sessionName = "fyyur_session"

// Server is the Fyyur web application.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	search   *search.ElasticsearchClient
	cache    *cache.ValkeyClient
	services *service.Services
}

// NewServer connects the database and any enabled integrations and builds the router.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &Server{config: cfg, db: db}
	opts := service.Options{DB: db}

	if cfg.NATS.Enabled {
		nc, err := messaging.NewNATSClient(cfg.NATS)
		if err != nil {
			s.Cleanup()
			return nil, err
		}
		s.nats = nc
		opts.Publisher = nc
	}

	if cfg.Elasticsearch.Enabled && !searchIndexEnabled(cfg) {
		slog.Warn("Elasticsearch needs NATS_ENABLED to stay current, using database search")
	}
	if searchIndexEnabled(cfg) {
		es, err := search.NewElasticsearchClient(cfg.Elasticsearch)
		if err != nil {
			// name search falls back to SQL
			slog.Warn("Elasticsearch unavailable, using database search", "error", err)
		} else {
			s.search = es
			opts.Index = es
		}
	}

	if cfg.Valkey.Enabled {
		vc, err := cache.NewValkeyClient(cache.Config{
			Addr:     cfg.Valkey.Addr,
			Password: cfg.Valkey.Password,
			DB:       cfg.Valkey.DB,
			TTL:      cfg.Valkey.TTL,
		})
		if err != nil {
			slog.Warn("Valkey unavailable, listing cache disabled", "error", err)
		} else {
			s.cache = vc
			opts.Cache = vc
		}
	}

	s.services = service.NewServices(opts)

	if err := handlers.RegisterValidators(); err != nil {
		s.Cleanup()
		return nil, fmt.Errorf("failed to register form validators: %w", err)
	}

	templates, err := web.Templates()
	if err != nil {
		s.Cleanup()
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := handlers.NewHandlers(s.services.Venues, s.services.Artists, s.services.Shows)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(sessions.Sessions(sessionName, cookie.NewStore([]byte(cfg.SessionSecret))))
	router.Use(middleware.Recovery(h.ServerError))
	router.SetHTMLTemplate(templates)

	s.router = router
	s.setupRoutes(h)

	return s, nil
}

// searchIndexEnabled reports whether name search may use Elasticsearch. The index
// is fed by the consumers from NATS events, so without NATS it would go stale.
func searchIndexEnabled(cfg *config.Config) bool {
	return cfg.Elasticsearch.Enabled && cfg.NATS.Enabled
}

func (s *Server) setupRoutes(h *handlers.Handlers) {
	s.router.GET("/health", s.healthCheck)
	if s.config.MetricsEnabled {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	h.RegisterRoutes(s.router)
}

// healthCheck reports the database and, when configured, the search index.
func (s *Server) healthCheck(c *gin.Context) {
	db := s.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	body := gin.H{
		"status":   "ok",
		"service":  "fyyur",
		"database": db,
	}
	if db.Status != "healthy" {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
	}

	if s.search != nil {
		if err := s.search.HealthCheck(c.Request.Context()); err != nil {
			body["search"] = gin.H{"status": "unhealthy", "error": err.Error()}
		} else {
			body["search"] = gin.H{"status": "healthy"}
		}
	}

	c.JSON(status, body)
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	return s.router.Run(":" + s.config.Port)
}

// GetRouter exposes the router for http.Server and tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes every open connection.
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			slog.Error("Error closing Valkey connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
