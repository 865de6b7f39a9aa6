package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ivanc/salesdesk/internal/domain"
	"github.com/ivanc/salesdesk/internal/store"
)

// SalesService composes the three stores: a sale is only created after its
// client and product are confirmed to exist. The existence check and the
// save are separate store calls, so a concurrent delete in between can slip
// through; an accepted limitation of the in-memory stores.
type SalesService interface {
	// Add registers a sale for an existing client and product. A sale with
	// a duplicate id silently overwrites the previous one (last write wins).
	Add(ctx context.Context, clientNumCI, productID, saleID string) (*domain.Sale, error)

	// Get returns the sale, or an error wrapping store.ErrNotFound.
	Get(ctx context.Context, saleID string) (*domain.Sale, error)

	// MarkSold flips the sold flag on an existing sale.
	MarkSold(ctx context.Context, saleID string, sold bool) (*domain.Sale, error)

	// Delete removes the sale by id.
	Delete(ctx context.Context, saleID string) error

	List(ctx context.Context) ([]*domain.Sale, error)

	// ListByClient and ListByProduct return the sales referencing the given
	// client or product; an empty slice, never an error, when none match.
	ListByClient(ctx context.Context, clientNumCI string) ([]*domain.Sale, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Sale, error)
}

type salesService struct {
	sales    store.SaleStore
	clients  store.ClientStore
	products store.ProductStore
}

// NewSalesService creates a sales service backed by the given stores.
func NewSalesService(sales store.SaleStore, clients store.ClientStore, products store.ProductStore) SalesService {
	return &salesService{
		sales:    sales,
		clients:  clients,
		products: products,
	}
}

func (s *salesService) Add(ctx context.Context, clientNumCI, productID, saleID string) (*domain.Sale, error) {
	clientNumCI = strings.TrimSpace(clientNumCI)
	productID = strings.TrimSpace(productID)
	saleID = strings.TrimSpace(saleID)
	if clientNumCI == "" {
		return nil, &domain.ValidationError{Field: "client numCI", Reason: "must not be empty"}
	}
	if productID == "" {
		return nil, &domain.ValidationError{Field: "product id", Reason: "must not be empty"}
	}
	if saleID == "" {
		return nil, &domain.ValidationError{Field: "sale identifier", Reason: "must not be empty"}
	}

	client, err := s.clients.Get(ctx, clientNumCI)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", clientNumCI, store.ErrNotFound)
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, store.ErrNotFound)
	}

	sale, err := domain.NewSale(client, product, saleID)
	if err != nil {
		return nil, err
	}

	// Save, not Update: a duplicate sale id is not an error here.
	return s.sales.Save(ctx, sale)
}

func (s *salesService) Get(ctx context.Context, saleID string) (*domain.Sale, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return nil, &domain.ValidationError{Field: "sale identifier", Reason: "must not be empty"}
	}
	sale, err := s.sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("sale %s: %w", saleID, store.ErrNotFound)
	}
	return sale, nil
}

func (s *salesService) MarkSold(ctx context.Context, saleID string, sold bool) (*domain.Sale, error) {
	sale, err := s.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.SetSold(sold)
	return s.sales.Update(ctx, sale)
}

func (s *salesService) Delete(ctx context.Context, saleID string) error {
	if _, err := s.Get(ctx, saleID); err != nil {
		return err
	}
	return s.sales.DeleteByID(ctx, strings.TrimSpace(saleID))
}

func (s *salesService) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.sales.List(ctx)
}

func (s *salesService) ListByClient(ctx context.Context, clientNumCI string) ([]*domain.Sale, error) {
	clientNumCI = strings.TrimSpace(clientNumCI)
	if clientNumCI == "" {
		return nil, &domain.ValidationError{Field: "client numCI", Reason: "must not be empty"}
	}
	return s.sales.ListByClient(ctx, clientNumCI)
}

func (s *salesService) ListByProduct(ctx context.Context, productID string) ([]*domain.Sale, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, &domain.ValidationError{Field: "product id", Reason: "must not be empty"}
	}
	return s.sales.ListByProduct(ctx, productID)
}
