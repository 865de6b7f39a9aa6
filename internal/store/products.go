package store

import (
	"context"
	"errors"

	"github.com/ivanc/salesdesk/internal/domain"
)

// ProductMemoryStore is the in-memory ProductStore implementation.
type ProductMemoryStore struct {
	store *memoryStore[*domain.Product]
}

// NewProductStore creates an empty product store.
func NewProductStore() *ProductMemoryStore {
	return &ProductMemoryStore{
		store: newMemoryStore("product", func(p *domain.Product) string { return p.ID() }),
	}
}

// Save inserts or overwrites the product keyed by id.
func (s *ProductMemoryStore) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product must not be nil")
	}
	if err := s.store.save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites an existing product, failing when the id is unknown.
func (s *ProductMemoryStore) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product must not be nil")
	}
	if err := s.store.update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns the product for the id, or nil when absent.
func (s *ProductMemoryStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, errors.New("product id must not be empty")
	}
	return s.store.get(id), nil
}

// List returns all stored products.
func (s *ProductMemoryStore) List(ctx context.Context) ([]*domain.Product, error) {
	return s.store.list(), nil
}

// Delete removes the product; deleting an absent product is a no-op.
func (s *ProductMemoryStore) Delete(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return errors.New("product must not be nil")
	}
	s.store.remove(product.ID())
	return nil
}

// DeleteByID removes the product by key; absent keys are a no-op.
func (s *ProductMemoryStore) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("product id must not be empty")
	}
	s.store.remove(id)
	return nil
}
