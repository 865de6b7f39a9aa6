package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ivanc/salesdesk/internal/domain"
	"github.com/ivanc/salesdesk/internal/store"
)

// ProductService exposes product management on top of the product store.
type ProductService interface {
	// Add validates and registers a new product. An existing product with
	// the same id is silently overwritten.
	Add(ctx context.Context, id, name string, cost float64) (*domain.Product, error)

	// Get returns the product, or an error wrapping store.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Product, error)

	// Rename changes the product's name, re-validating it.
	Rename(ctx context.Context, id, newName string) (*domain.Product, error)

	// Reprice changes the product's cost, re-validating it.
	Reprice(ctx context.Context, id string, newCost float64) (*domain.Product, error)

	// Delete removes the product. Sales referencing it are left untouched.
	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]*domain.Product, error)
}

type productService struct {
	products store.ProductStore
}

// NewProductService creates a product service backed by the given store.
func NewProductService(products store.ProductStore) ProductService {
	return &productService{products: products}
}

func (s *productService) Add(ctx context.Context, id, name string, cost float64) (*domain.Product, error) {
	product, err := domain.NewProduct(id, name, cost)
	if err != nil {
		return nil, err
	}
	return s.products.Save(ctx, product)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &domain.ValidationError{Field: "product id", Reason: "must not be empty"}
	}
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
	}
	return product, nil
}

func (s *productService) Rename(ctx context.Context, id, newName string) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.SetName(newName); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, product)
}

func (s *productService) Reprice(ctx context.Context, id string, newCost float64) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.SetCost(newCost); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, product)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.products.DeleteByID(ctx, strings.TrimSpace(id))
}

func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}
