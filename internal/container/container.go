package container

import (
	"context"

	"golang.org/x/sync/errgroup"

	"mintkitchen/api/internal/client"
	"mintkitchen/api/internal/config"
	"mintkitchen/api/internal/server"
	"mintkitchen/api/internal/service"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config *config.Config
	Client client.SquareClient

	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Payments *service.PaymentService

	Server *server.Server
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	creds := cfg.Square.Resolve()
	if creds.Configured() {
		log.Infof("✅ Square client configured for %s (%s)", creds.Environment, creds.BaseURL)
	} else {
		log.Warnf("Square access token missing for %s, API routes will report not configured", creds.Environment)
	}

	squareClient := client.NewSquareClient(cfg.Square, creds)
	container.Client = squareClient

	locations := service.NewLocationResolver(squareClient, cfg.Square.LocationID)

	container.Catalog = service.NewCatalogService(squareClient)
	container.Orders = service.NewOrderService(squareClient, locations, cfg.Square.Currency, nil)
	container.Payments = service.NewPaymentService(squareClient, locations, cfg.Square.Currency, nil)

	container.Server = server.New(cfg, server.Services{
		Catalog:  container.Catalog,
		Orders:   container.Orders,
		Payments: container.Payments,
	}, creds.Configured())

	return container, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Start()
	})

	g.Go(func() error {
		<-ctx.Done()
		return c.Server.Shutdown(ctx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Container shut down successfully")
	return nil
}
