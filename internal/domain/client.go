package domain

import (
	"fmt"
	"time"
)

// Client is a registered customer. Identity is the national ID number
// (numCI): two clients are the same client iff their numCI values match.
// Fields are unexported so a client can only be mutated through the
// validating setters and can never reach an invalid state.
type Client struct {
	name         string
	numCI        string
	email        string
	registeredAt time.Time
}

// NewClient creates a client, validating every field. The registration
// timestamp is stamped once here and never changes.
func NewClient(name, numCI, email string) (*Client, error) {
	c := &Client{registeredAt: time.Now()}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.setNumCI(numCI); err != nil {
		return nil, err
	}
	if err := c.SetEmail(email); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Name() string  { return c.name }
func (c *Client) NumCI() string { return c.numCI }
func (c *Client) Email() string { return c.email }

// RegisteredAt returns the creation timestamp.
func (c *Client) RegisteredAt() time.Time { return c.registeredAt }

// SetName replaces the client's name after validation.
func (c *Client) SetName(name string) error {
	trimmed, err := requireText("client name", name)
	if err != nil {
		return err
	}
	c.name = trimmed
	return nil
}

// SetEmail replaces the client's email after validation.
func (c *Client) SetEmail(email string) error {
	trimmed, err := requireText("email", email)
	if err != nil {
		return err
	}
	if !emailPattern.MatchString(trimmed) {
		return &ValidationError{Field: "email", Reason: fmt.Sprintf("%q is not a valid address", trimmed)}
	}
	c.email = trimmed
	return nil
}

// setNumCI is only reachable from the constructor. numCI is the store key;
// changing it after construction would strand the entity under a stale key.
func (c *Client) setNumCI(numCI string) error {
	trimmed, err := requireText("numCI", numCI)
	if err != nil {
		return err
	}
	if !numCIPattern.MatchString(trimmed) {
		return &ValidationError{Field: "numCI", Reason: fmt.Sprintf("%q must contain digits only", trimmed)}
	}
	c.numCI = trimmed
	return nil
}

// Equal reports whether both clients share the same numCI.
func (c *Client) Equal(other *Client) bool {
	return other != nil && c.numCI == other.numCI
}

func (c *Client) String() string {
	return fmt.Sprintf("CI: %s, Name: %s, Email: %s, Registered: %s",
		c.numCI, c.name, c.email, c.registeredAt.Format("2006-01-02"))
}
