package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Valid(t *testing.T) {
	c, err := NewClient("  Ada Lovelace  ", " 12345678 ", " ada@example.com ")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", c.Name())
	assert.Equal(t, "12345678", c.NumCI())
	assert.Equal(t, "ada@example.com", c.Email())
	assert.False(t, c.RegisteredAt().IsZero())
}

func TestNewClient_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inCI      string
		inEmail   string
		wantField string
	}{
		{"empty name", "", "123", "a@b.com", "client name"},
		{"blank name", "   ", "123", "a@b.com", "client name"},
		{"empty ci", "Ada", "", "a@b.com", "numCI"},
		{"letters in ci", "Ada", "12a45", "a@b.com", "numCI"},
		{"ci with spaces inside", "Ada", "12 45", "a@b.com", "numCI"},
		{"empty email", "Ada", "123", "", "email"},
		{"email without at", "Ada", "123", "ada.example.com", "email"},
		{"email without tld", "Ada", "123", "ada@example", "email"},
		{"email tld too long", "Ada", "123", "ada@example.software", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.inName, tt.inCI, tt.inEmail)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestClient_SetName(t *testing.T) {
	c, err := NewClient("Ada", "123", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, c.SetName("  Grace Hopper "))
	assert.Equal(t, "Grace Hopper", c.Name())

	// A rejected value leaves the current one untouched
	require.Error(t, c.SetName("   "))
	assert.Equal(t, "Grace Hopper", c.Name())
}

func TestClient_SetEmail(t *testing.T) {
	c, err := NewClient("Ada", "123", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, c.SetEmail("ada.lovelace@mail.example.org"))
	assert.Equal(t, "ada.lovelace@mail.example.org", c.Email())

	require.Error(t, c.SetEmail("not-an-email"))
	assert.Equal(t, "ada.lovelace@mail.example.org", c.Email())
}

func TestClient_Equal(t *testing.T) {
	a, err := NewClient("Ada", "123", "ada@example.com")
	require.NoError(t, err)
	b, err := NewClient("Completely Different", "123", "other@example.com")
	require.NoError(t, err)
	c, err := NewClient("Ada", "456", "ada@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same numCI means same client")
	assert.False(t, a.Equal(c), "different numCI means different client")
	assert.False(t, a.Equal(nil))
}
