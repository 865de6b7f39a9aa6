package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ivanc/salesdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClient(t *testing.T, name, numCI, email string) *domain.Client {
	t.Helper()
	c, err := domain.NewClient(name, numCI, email)
	require.NoError(t, err)
	return c
}

func mustProduct(t *testing.T, id, name string, cost float64) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(id, name, cost)
	require.NoError(t, err)
	return p
}

func mustSale(t *testing.T, client *domain.Client, product *domain.Product, id string) *domain.Sale {
	t.Helper()
	s, err := domain.NewSale(client, product, id)
	require.NoError(t, err)
	return s
}

func TestClientStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	ada := mustClient(t, "Ada", "123", "ada@example.com")
	saved, err := s.Save(ctx, ada)
	require.NoError(t, err)
	assert.Same(t, ada, saved)

	got, err := s.Get(ctx, "123")
	require.NoError(t, err)
	assert.Same(t, ada, got)
}

func TestClientStore_GetAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	// A missing key is not an error, just a nil result
	got, err := s.Get(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClientStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	first := mustClient(t, "Ada", "123", "ada@example.com")
	second := mustClient(t, "Grace", "123", "grace@example.com")

	_, err := s.Save(ctx, first)
	require.NoError(t, err)
	_, err = s.Save(ctx, second)
	require.NoError(t, err)

	got, err := s.Get(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name(), "last write wins")

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestClientStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	ada := mustClient(t, "Ada", "123", "ada@example.com")
	_, err := s.Update(ctx, ada)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	ada := mustClient(t, "Ada", "123", "ada@example.com")
	_, err := s.Save(ctx, ada)
	require.NoError(t, err)

	require.NoError(t, s.DeleteByNumCI(ctx, "123"))
	got, err := s.Get(ctx, "123")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op, not an error
	require.NoError(t, s.DeleteByNumCI(ctx, "123"))
}

func TestClientStore_ListIsFreshSlice(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	_, err := s.Save(ctx, mustClient(t, "Ada", "123", "ada@example.com"))
	require.NoError(t, err)
	_, err = s.Save(ctx, mustClient(t, "Grace", "456", "grace@example.com"))
	require.NoError(t, err)

	first, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Mutating the returned slice must not affect the store
	first[0] = nil
	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.NotNil(t, second[0])
	assert.NotNil(t, second[1])
}

func TestProductStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewProductStore()

	widget := mustProduct(t, "SKU-001", "Widget", 9.99)
	_, err := s.Save(ctx, widget)
	require.NoError(t, err)

	got, err := s.Get(ctx, "SKU-001")
	require.NoError(t, err)
	assert.Same(t, widget, got)

	require.NoError(t, s.DeleteByID(ctx, "SKU-001"))
	got, err = s.Get(ctx, "SKU-001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := NewProductStore()

	_, err := s.Update(ctx, mustProduct(t, "SKU-001", "Widget", 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaleStore_Filters(t *testing.T) {
	ctx := context.Background()
	s := NewSaleStore()

	ada := mustClient(t, "Ada", "123", "ada@example.com")
	grace := mustClient(t, "Grace", "456", "grace@example.com")
	widget := mustProduct(t, "SKU-001", "Widget", 9.99)
	gadget := mustProduct(t, "SKU-002", "Gadget", 19.99)

	_, err := s.Save(ctx, mustSale(t, ada, widget, "sale-1"))
	require.NoError(t, err)
	_, err = s.Save(ctx, mustSale(t, ada, gadget, "sale-2"))
	require.NoError(t, err)
	_, err = s.Save(ctx, mustSale(t, grace, widget, "sale-3"))
	require.NoError(t, err)

	byAda, err := s.ListByClient(ctx, "123")
	require.NoError(t, err)
	assert.Len(t, byAda, 2)

	byWidget, err := s.ListByProduct(ctx, "SKU-001")
	require.NoError(t, err)
	assert.Len(t, byWidget, 2)

	// No match yields an empty slice, not an error
	none, err := s.ListByClient(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSaleStore_NilEntity(t *testing.T) {
	ctx := context.Background()
	s := NewSaleStore()

	_, err := s.Save(ctx, nil)
	assert.Error(t, err)
	_, err = s.Update(ctx, nil)
	assert.Error(t, err)
	assert.Error(t, s.Delete(ctx, nil))
}

func TestClientStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			numCI := fmt.Sprintf("%d", 1000+n)
			c := mustClient(t, "Client", numCI, "c@example.com")
			if _, err := s.Save(ctx, c); err != nil {
				t.Error(err)
				return
			}
			if _, err := s.Get(ctx, numCI); err != nil {
				t.Error(err)
			}
			if _, err := s.List(ctx); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
