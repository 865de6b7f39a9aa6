package store

import (
	"context"
	"errors"

	"github.com/ivanc/salesdesk/internal/domain"
)

// ErrNotFound is returned by Update when the entity's key is not present.
// Lookup reads never use it: a missing key yields a nil entity and no error.
var ErrNotFound = errors.New("not found")

// ClientStore keeps clients keyed by numCI.
type ClientStore interface {
	// Save inserts or overwrites by key. Last write wins on a duplicate key.
	Save(ctx context.Context, client *domain.Client) (*domain.Client, error)
	// Update overwrites an existing client, failing with ErrNotFound when
	// the key is absent.
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	// Get returns nil without error when the key is absent.
	Get(ctx context.Context, numCI string) (*domain.Client, error)
	// List returns a fresh slice in no particular order.
	List(ctx context.Context) ([]*domain.Client, error)
	// Delete and DeleteByNumCI are idempotent.
	Delete(ctx context.Context, client *domain.Client) error
	DeleteByNumCI(ctx context.Context, numCI string) error
}

// ProductStore keeps products keyed by product id.
type ProductStore interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, product *domain.Product) error
	DeleteByID(ctx context.Context, id string) error
}

// SaleStore keeps sales keyed by sale identifier, with linear filters over
// the embedded client and product references.
type SaleStore interface {
	Save(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Get(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	Delete(ctx context.Context, sale *domain.Sale) error
	DeleteByID(ctx context.Context, id string) error
	// ListByClient and ListByProduct return empty slices, never errors,
	// when nothing matches.
	ListByClient(ctx context.Context, numCI string) ([]*domain.Sale, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Sale, error)
}
