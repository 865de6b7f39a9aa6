package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ivanc/salesdesk/internal/domain"
	"github.com/ivanc/salesdesk/internal/store"
)

// ClientService exposes client management on top of the client store.
// Failures are returned as errors the caller can branch on: validation
// failures as *domain.ValidationError, missing entities wrapping
// store.ErrNotFound.
type ClientService interface {
	// Add validates and registers a new client. An existing client with
	// the same numCI is silently overwritten.
	Add(ctx context.Context, name, numCI, email string) (*domain.Client, error)

	// Get returns the client, or an error wrapping store.ErrNotFound.
	Get(ctx context.Context, numCI string) (*domain.Client, error)

	// Rename changes the client's name, re-validating it. The change is
	// visible through every sale referencing this client.
	Rename(ctx context.Context, numCI, newName string) (*domain.Client, error)

	// ChangeEmail changes the client's email, re-validating it.
	ChangeEmail(ctx context.Context, numCI, newEmail string) (*domain.Client, error)

	// Delete removes the client. Sales referencing it are left untouched;
	// there is no cascade.
	Delete(ctx context.Context, numCI string) error

	List(ctx context.Context) ([]*domain.Client, error)
}

type clientService struct {
	clients store.ClientStore
}

// NewClientService creates a client service backed by the given store.
func NewClientService(clients store.ClientStore) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) Add(ctx context.Context, name, numCI, email string) (*domain.Client, error) {
	client, err := domain.NewClient(name, numCI, email)
	if err != nil {
		return nil, err
	}
	return s.clients.Save(ctx, client)
}

func (s *clientService) Get(ctx context.Context, numCI string) (*domain.Client, error) {
	numCI = strings.TrimSpace(numCI)
	if numCI == "" {
		return nil, &domain.ValidationError{Field: "numCI", Reason: "must not be empty"}
	}
	client, err := s.clients.Get(ctx, numCI)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", numCI, store.ErrNotFound)
	}
	return client, nil
}

func (s *clientService) Rename(ctx context.Context, numCI, newName string) (*domain.Client, error) {
	client, err := s.Get(ctx, numCI)
	if err != nil {
		return nil, err
	}
	if err := client.SetName(newName); err != nil {
		return nil, err
	}
	return s.clients.Update(ctx, client)
}

func (s *clientService) ChangeEmail(ctx context.Context, numCI, newEmail string) (*domain.Client, error) {
	client, err := s.Get(ctx, numCI)
	if err != nil {
		return nil, err
	}
	if err := client.SetEmail(newEmail); err != nil {
		return nil, err
	}
	return s.clients.Update(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, numCI string) error {
	if _, err := s.Get(ctx, numCI); err != nil {
		return err
	}
	return s.clients.DeleteByNumCI(ctx, strings.TrimSpace(numCI))
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}
