package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ivanc/salesdesk/internal/domain"
	"github.com/ivanc/salesdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientFixture() (ClientService, store.ClientStore) {
	clients := store.NewClientStore()
	return NewClientService(clients), clients
}

func TestClientService_Add(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	c, err := svc.Add(ctx, "Ada Lovelace", "12345678", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", c.Name())

	got, err := svc.Get(ctx, "12345678")
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestClientService_AddInvalid(t *testing.T) {
	ctx := context.Background()
	svc, clients := newClientFixture()

	_, err := svc.Add(ctx, "Ada", "not-digits", "ada@example.com")
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))

	// A rejected client is never stored
	all, err := clients.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClientService_AddDuplicateOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	_, err := svc.Add(ctx, "Ada", "123", "ada@example.com")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Grace", "123", "grace@example.com")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name(), "last write wins on a duplicate numCI")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestClientService_GetMissing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	_, err := svc.Get(ctx, "999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientService_GetEmptyArg(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	_, err := svc.Get(ctx, "  ")
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestClientService_Rename(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	_, err := svc.Add(ctx, "Ada", "123", "ada@example.com")
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, "123", "Ada King")
	require.NoError(t, err)
	assert.Equal(t, "Ada King", renamed.Name())

	got, err := svc.Get(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "Ada King", got.Name())
}

func TestClientService_RenameMissing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	_, err := svc.Rename(ctx, "999", "Nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientService_ChangeEmailInvalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	_, err := svc.Add(ctx, "Ada", "123", "ada@example.com")
	require.NoError(t, err)

	_, err = svc.ChangeEmail(ctx, "123", "broken")
	require.Error(t, err)

	got, err := svc.Get(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email(), "rejected email leaves the stored one untouched")
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newClientFixture()

	_, err := svc.Add(ctx, "Ada", "123", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "123"))

	_, err = svc.Get(ctx, "123")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting a client that is already gone reports not found
	err = svc.Delete(ctx, "123")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
