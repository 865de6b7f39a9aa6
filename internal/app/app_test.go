package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivanc/salesdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithConfig_Empty(t *testing.T) {
	ctx := context.Background()

	a, err := NewWithConfig(ctx, config.DefaultConfig())
	require.NoError(t, err)

	clients, err := a.ClientService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	products, err := a.ProductService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	sales, err := a.SalesService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestNewWithConfig_Seed(t *testing.T) {
	ctx := context.Background()

	seedYAML := `
clients:
  - name: Ada Lovelace
    num_ci: "123"
    email: ada@example.com
  - name: Grace Hopper
    num_ci: "456"
    email: grace@example.com
products:
  - id: SKU-001
    name: Widget
    cost: 9.99
sales:
  - id: sale-1
    client: "123"
    product: SKU-001
  - id: sale-2
    client: "456"
    product: SKU-001
    sold: false
`
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedYAML), 0644))

	cfg := config.DefaultConfig()
	cfg.Seed.Path = seedPath

	a, err := NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	clients, err := a.ClientService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	products, err := a.ProductService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	sale1, err := a.SalesService.Get(ctx, "sale-1")
	require.NoError(t, err)
	assert.True(t, sale1.Sold(), "sold defaults to true when omitted")

	sale2, err := a.SalesService.Get(ctx, "sale-2")
	require.NoError(t, err)
	assert.False(t, sale2.Sold())
}

func TestNewWithConfig_SeedMissingFile(t *testing.T) {
	ctx := context.Background()

	cfg := config.DefaultConfig()
	cfg.Seed.Path = filepath.Join(t.TempDir(), "does-not-exist.yaml")

	_, err := NewWithConfig(ctx, cfg)
	assert.Error(t, err)
}

func TestNewWithConfig_SeedBadReference(t *testing.T) {
	ctx := context.Background()

	// The sale references a client that the dataset never defines
	seedYAML := `
products:
  - id: SKU-001
    name: Widget
    cost: 1
sales:
  - id: sale-1
    client: "999"
    product: SKU-001
`
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedYAML), 0644))

	cfg := config.DefaultConfig()
	cfg.Seed.Path = seedPath

	_, err := NewWithConfig(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sale-1")
}
