// Package client defines the client record a task is always tied to.
package client

import (
	"errors"
	"time"
)

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("client: name required")
	}
	return nil
}
