package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ivanc/salesdesk/internal/domain"
	"github.com/ivanc/salesdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type salesFixture struct {
	sales    SalesService
	clients  ClientService
	products ProductService
}

// newSalesFixture wires the three services over fresh stores and seeds one
// client and one product for sales to reference.
func newSalesFixture(t *testing.T) *salesFixture {
	t.Helper()
	ctx := context.Background()

	clientStore := store.NewClientStore()
	productStore := store.NewProductStore()
	saleStore := store.NewSaleStore()

	f := &salesFixture{
		sales:    NewSalesService(saleStore, clientStore, productStore),
		clients:  NewClientService(clientStore),
		products: NewProductService(productStore),
	}

	_, err := f.clients.Add(ctx, "Ada Lovelace", "123", "ada@example.com")
	require.NoError(t, err)
	_, err = f.products.Add(ctx, "SKU-001", "Widget", 9.99)
	require.NoError(t, err)

	return f
}

func TestSalesService_Add(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	sale, err := f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)

	assert.Equal(t, "sale-1", sale.ID())
	assert.Equal(t, "123", sale.Client().NumCI())
	assert.Equal(t, "SKU-001", sale.Product().ID())
	assert.True(t, sale.Sold(), "a new sale starts as sold")
}

func TestSalesService_AddMissingClient(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.sales.Add(ctx, "999", "SKU-001", "sale-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := f.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a rejected sale is never stored")
}

func TestSalesService_AddMissingProduct(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.sales.Add(ctx, "123", "SKU-404", "sale-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSalesService_AddEmptyArgs(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	tests := []struct {
		name      string
		clientCI  string
		productID string
		saleID    string
	}{
		{"empty client", "", "SKU-001", "sale-1"},
		{"empty product", "123", "  ", "sale-1"},
		{"empty sale id", "123", "SKU-001", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.sales.Add(ctx, tt.clientCI, tt.productID, tt.saleID)
			require.Error(t, err)

			var verr *domain.ValidationError
			assert.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
		})
	}
}

func TestSalesService_AddDuplicateIDOverwrites(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.products.Add(ctx, "SKU-002", "Gadget", 19.99)
	require.NoError(t, err)

	_, err = f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)
	_, err = f.sales.Add(ctx, "123", "SKU-002", "sale-1")
	require.NoError(t, err)

	got, err := f.sales.Get(ctx, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, "SKU-002", got.Product().ID(), "last write wins on a duplicate sale id")

	all, err := f.sales.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSalesService_MarkSold(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)

	updated, err := f.sales.MarkSold(ctx, "sale-1", false)
	require.NoError(t, err)
	assert.False(t, updated.Sold())

	got, err := f.sales.Get(ctx, "sale-1")
	require.NoError(t, err)
	assert.False(t, got.Sold())

	_, err = f.sales.MarkSold(ctx, "sale-404", true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSalesService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)

	require.NoError(t, f.sales.Delete(ctx, "sale-1"))

	_, err = f.sales.Get(ctx, "sale-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = f.sales.Delete(ctx, "sale-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSalesService_ListByClient(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.clients.Add(ctx, "Grace Hopper", "456", "grace@example.com")
	require.NoError(t, err)

	_, err = f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)
	_, err = f.sales.Add(ctx, "123", "SKU-001", "sale-2")
	require.NoError(t, err)
	_, err = f.sales.Add(ctx, "456", "SKU-001", "sale-3")
	require.NoError(t, err)

	byAda, err := f.sales.ListByClient(ctx, "123")
	require.NoError(t, err)
	assert.Len(t, byAda, 2)

	// No match is an empty result, not an error
	none, err := f.sales.ListByClient(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, none)

	// An empty filter argument is rejected
	_, err = f.sales.ListByClient(ctx, "  ")
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestSalesService_ListByProduct(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.products.Add(ctx, "SKU-002", "Gadget", 19.99)
	require.NoError(t, err)

	_, err = f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)
	_, err = f.sales.Add(ctx, "123", "SKU-002", "sale-2")
	require.NoError(t, err)

	byWidget, err := f.sales.ListByProduct(ctx, "SKU-001")
	require.NoError(t, err)
	require.Len(t, byWidget, 1)
	assert.Equal(t, "sale-1", byWidget[0].ID())

	_, err = f.sales.ListByProduct(ctx, "")
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestSalesService_NoCascadeOnClientDelete(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)

	// Deleting the client leaves the sale and its reference intact
	require.NoError(t, f.clients.Delete(ctx, "123"))

	sale, err := f.sales.Get(ctx, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", sale.Client().Name())

	byClient, err := f.sales.ListByClient(ctx, "123")
	require.NoError(t, err)
	assert.Len(t, byClient, 1, "the filter still matches the dangling reference")

	// But a new sale for the deleted client is rejected
	_, err = f.sales.Add(ctx, "123", "SKU-001", "sale-2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSalesService_NoCascadeOnProductDelete(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)

	require.NoError(t, f.products.Delete(ctx, "SKU-001"))

	sale, err := f.sales.Get(ctx, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", sale.Product().Name())
}

func TestSalesService_SharedReferenceReflectsUpdates(t *testing.T) {
	ctx := context.Background()
	f := newSalesFixture(t)

	_, err := f.sales.Add(ctx, "123", "SKU-001", "sale-1")
	require.NoError(t, err)

	_, err = f.clients.Rename(ctx, "123", "Ada King")
	require.NoError(t, err)
	_, err = f.products.Reprice(ctx, "SKU-001", 25)
	require.NoError(t, err)

	sale, err := f.sales.Get(ctx, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada King", sale.Client().Name())
	assert.Equal(t, 25.0, sale.Product().Cost())
}
