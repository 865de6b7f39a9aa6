package app

import (
	"context"
	"fmt"

	"github.com/ivanc/salesdesk/internal/config"
	"github.com/ivanc/salesdesk/internal/service"
	"github.com/ivanc/salesdesk/internal/store"
)

// App is the dependency injection container for all application components.
// The three stores live exactly as long as the process; nothing is persisted.
type App struct {
	Config *config.Config

	// Stores
	Clients  store.ClientStore
	Products store.ProductStore
	Sales    store.SaleStore

	// Services
	ClientService  service.ClientService
	ProductService service.ProductService
	SalesService   service.SalesService
}

// New creates a new App instance: config from the default path, fresh empty
// stores, and the seed dataset (when configured) loaded through the services.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	clients := store.NewClientStore()
	products := store.NewProductStore()
	sales := store.NewSaleStore()

	a := &App{
		Config:         cfg,
		Clients:        clients,
		Products:       products,
		Sales:          sales,
		ClientService:  service.NewClientService(clients),
		ProductService: service.NewProductService(products),
		SalesService:   service.NewSalesService(sales, clients, products),
	}

	if cfg.Seed.Path != "" {
		if err := a.loadSeed(ctx, cfg.Seed.Path); err != nil {
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
	}

	return a, nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
