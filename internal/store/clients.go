package store

import (
	"context"
	"errors"

	"github.com/ivanc/salesdesk/internal/domain"
)

// ClientMemoryStore is the in-memory ClientStore implementation.
type ClientMemoryStore struct {
	store *memoryStore[*domain.Client]
}

// NewClientStore creates an empty client store.
func NewClientStore() *ClientMemoryStore {
	return &ClientMemoryStore{
		store: newMemoryStore("client", func(c *domain.Client) string { return c.NumCI() }),
	}
}

// Save inserts or overwrites the client keyed by numCI.
func (s *ClientMemoryStore) Save(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, errors.New("client must not be nil")
	}
	if err := s.store.save(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update overwrites an existing client, failing when the numCI is unknown.
func (s *ClientMemoryStore) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil {
		return nil, errors.New("client must not be nil")
	}
	if err := s.store.update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Get returns the client for the numCI, or nil when absent.
func (s *ClientMemoryStore) Get(ctx context.Context, numCI string) (*domain.Client, error) {
	if numCI == "" {
		return nil, errors.New("numCI must not be empty")
	}
	return s.store.get(numCI), nil
}

// List returns all stored clients.
func (s *ClientMemoryStore) List(ctx context.Context) ([]*domain.Client, error) {
	return s.store.list(), nil
}

// Delete removes the client; deleting an absent client is a no-op.
func (s *ClientMemoryStore) Delete(ctx context.Context, client *domain.Client) error {
	if client == nil {
		return errors.New("client must not be nil")
	}
	s.store.remove(client.NumCI())
	return nil
}

// DeleteByNumCI removes the client by key; absent keys are a no-op.
func (s *ClientMemoryStore) DeleteByNumCI(ctx context.Context, numCI string) error {
	if numCI == "" {
		return errors.New("numCI must not be empty")
	}
	s.store.remove(numCI)
	return nil
}
