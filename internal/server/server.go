package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mintkitchen/api/internal/config"
	"mintkitchen/api/internal/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CatalogService reads the storefront view of the catalog
type CatalogService interface {
	Menu(ctx context.Context) (*domain.Menu, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Item(ctx context.Context, id string) (json.RawMessage, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, in domain.CreateOrderInput) (*domain.OrderResult, error)
}

type PaymentService interface {
	CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.PaymentResult, error)
}

// Services bundles the business handlers the HTTP facade delegates to
type Services struct {
	Catalog  CatalogService
	Orders   OrderService
	Payments PaymentService
}

// Server is the Mint Kitchen HTTP facade
type Server struct {
	cfg        *config.Config
	services   Services
	configured bool

	router     *gin.Engine
	httpServer *http.Server
}

// New builds the router. When configured is false every /api route answers
// with the configuration error; the liveness route still works.
func New(cfg *config.Config, services Services, configured bool) *Server {
	router := gin.New()

	s := &Server{
		cfg:        cfg,
		services:   services,
		configured: configured,
		router:     router,
	}

	router.Use(gin.Recovery())
	router.Use(accessLog())
	router.Use(corsMiddleware(cfg.CORS))
	router.Use(requestTimeout(cfg.Server.RequestTimeoutDuration()))

	router.GET("/", s.handleRoot)

	api := router.Group("/api")
	api.Use(s.requireConfigured())
	{
		api.GET("/menu", s.handleMenu)
		api.GET("/categories", s.handleCategories)
		api.GET("/items/:item_id", s.handleItem)
		api.POST("/orders/create", s.handleCreateOrder)
		api.POST("/payments/create", s.handleCreatePayment)
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.Infof("🚀 %s %s listening on %s", s.cfg.App.Name, s.cfg.App.Version, s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured shutdown timeout
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := s.cfg.Server.ShutdownTimeoutDuration()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	log.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{durationHeader},
		MaxAge:        12 * time.Hour,
	}

	// credentials are never allowed with a wildcard origin
	if cfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Origins
		corsCfg.AllowCredentials = true
	}

	return cors.New(corsCfg)
}
