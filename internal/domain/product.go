package domain

import "fmt"

// Product is an item offered for sale, identified by its id. Equality is
// by id only; name and cost are mutable through the validating setters.
type Product struct {
	id   string
	name string
	cost float64
}

// NewProduct creates a product, validating every field. Cost may be zero
// but never negative.
func NewProduct(id, name string, cost float64) (*Product, error) {
	p := &Product{}
	if err := p.setID(id); err != nil {
		return nil, err
	}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetCost(cost); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) ID() string    { return p.id }
func (p *Product) Name() string  { return p.name }
func (p *Product) Cost() float64 { return p.cost }

// SetName replaces the product's name after validation.
func (p *Product) SetName(name string) error {
	trimmed, err := requireText("product name", name)
	if err != nil {
		return err
	}
	p.name = trimmed
	return nil
}

// SetCost replaces the product's cost. Zero is allowed.
func (p *Product) SetCost(cost float64) error {
	if cost < 0 {
		return &ValidationError{Field: "cost", Reason: fmt.Sprintf("must not be negative, got %.2f", cost)}
	}
	p.cost = cost
	return nil
}

// setID is only reachable from the constructor; the id is the store key.
func (p *Product) setID(id string) error {
	trimmed, err := requireText("product id", id)
	if err != nil {
		return err
	}
	p.id = trimmed
	return nil
}

// Equal reports whether both products share the same id.
func (p *Product) Equal(other *Product) bool {
	return other != nil && p.id == other.id
}

func (p *Product) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Cost: %.2f", p.id, p.name, p.cost)
}
