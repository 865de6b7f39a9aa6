package store

import (
	"context"
	"errors"

	"github.com/ivanc/salesdesk/internal/domain"
)

// SaleMemoryStore is the in-memory SaleStore implementation.
type SaleMemoryStore struct {
	store *memoryStore[*domain.Sale]
}

// NewSaleStore creates an empty sale store.
func NewSaleStore() *SaleMemoryStore {
	return &SaleMemoryStore{
		store: newMemoryStore("sale", func(s *domain.Sale) string { return s.ID() }),
	}
}

// Save inserts or overwrites the sale keyed by its identifier.
func (s *SaleMemoryStore) Save(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if sale == nil {
		return nil, errors.New("sale must not be nil")
	}
	if err := s.store.save(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Update overwrites an existing sale, failing when the id is unknown.
func (s *SaleMemoryStore) Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if sale == nil {
		return nil, errors.New("sale must not be nil")
	}
	if err := s.store.update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Get returns the sale for the id, or nil when absent.
func (s *SaleMemoryStore) Get(ctx context.Context, id string) (*domain.Sale, error) {
	if id == "" {
		return nil, errors.New("sale id must not be empty")
	}
	return s.store.get(id), nil
}

// List returns all stored sales.
func (s *SaleMemoryStore) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.store.list(), nil
}

// Delete removes the sale; deleting an absent sale is a no-op.
func (s *SaleMemoryStore) Delete(ctx context.Context, sale *domain.Sale) error {
	if sale == nil {
		return errors.New("sale must not be nil")
	}
	s.store.remove(sale.ID())
	return nil
}

// DeleteByID removes the sale by key; absent keys are a no-op.
func (s *SaleMemoryStore) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("sale id must not be empty")
	}
	s.store.remove(id)
	return nil
}

// ListByClient returns the sales whose client has the given numCI.
func (s *SaleMemoryStore) ListByClient(ctx context.Context, numCI string) ([]*domain.Sale, error) {
	if numCI == "" {
		return nil, errors.New("numCI must not be empty")
	}
	return s.store.filter(func(sale *domain.Sale) bool {
		return sale.Client().NumCI() == numCI
	}), nil
}

// ListByProduct returns the sales whose product has the given id.
func (s *SaleMemoryStore) ListByProduct(ctx context.Context, productID string) ([]*domain.Sale, error) {
	if productID == "" {
		return nil, errors.New("product id must not be empty")
	}
	return s.store.filter(func(sale *domain.Sale) bool {
		return sale.Product().ID() == productID
	}), nil
}
