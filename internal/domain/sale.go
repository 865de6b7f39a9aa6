package domain

import (
	"fmt"
	"time"
)

// Sale links one client to one product under its own identifier. The client
// and product are held by reference, not copied: renaming a client through
// its store changes what every sale referencing it reports. Deleting the
// client or product from its store does not touch the sale; the reference
// simply dangles. Both behaviors are deliberate contracts, not accidents.
type Sale struct {
	id          string
	client      *Client
	product     *Product
	purchasedAt time.Time
	sold        bool
}

// NewSale creates a sale for an existing client and product. A sale record
// implies a completed transaction, so the sold flag starts true. The
// purchase timestamp is stamped once here and never changes.
func NewSale(client *Client, product *Product, id string) (*Sale, error) {
	if client == nil {
		return nil, &ValidationError{Field: "client", Reason: "must not be nil"}
	}
	if product == nil {
		return nil, &ValidationError{Field: "product", Reason: "must not be nil"}
	}
	trimmed, err := requireText("sale identifier", id)
	if err != nil {
		return nil, err
	}
	return &Sale{
		id:          trimmed,
		client:      client,
		product:     product,
		purchasedAt: time.Now(),
		sold:        true,
	}, nil
}

func (s *Sale) ID() string        { return s.id }
func (s *Sale) Client() *Client   { return s.client }
func (s *Sale) Product() *Product { return s.product }
func (s *Sale) Sold() bool        { return s.sold }

// PurchasedAt returns the creation timestamp.
func (s *Sale) PurchasedAt() time.Time { return s.purchasedAt }

// SetSold flips the sold flag, e.g. to mark a sale pending or cancelled.
func (s *Sale) SetSold(sold bool) { s.sold = sold }

// Equal reports whether both sales share the same identifier.
func (s *Sale) Equal(other *Sale) bool {
	return other != nil && s.id == other.id
}

func (s *Sale) String() string {
	status := "sold"
	if !s.sold {
		status = "pending"
	}
	return fmt.Sprintf("Sale: %s, Client: %s, Product: %s, Date: %s, Status: %s",
		s.id, s.client.Name(), s.product.Name(), s.purchasedAt.Format("2006-01-02"), status)
}
