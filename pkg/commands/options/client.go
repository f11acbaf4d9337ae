package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/client"
)

// ClientOptions captures the client field flags shared by add and edit.
type ClientOptions struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// AddClientArgs wires the client field flags on the provided command.
func AddClientArgs(cmd *cobra.Command, o *ClientOptions) {
	cmd.Flags().StringVar(&o.Email, "email", "", "Client email address.")
	cmd.Flags().StringVar(&o.Phone, "phone", "", "Client phone number.")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "Free-form notes.")
}

// Fields builds a new client from the flags.
func (o *ClientOptions) Fields() client.Client {
	return client.Client{
		Name:  o.Name,
		Email: o.Email,
		Phone: o.Phone,
		Notes: o.Notes,
	}
}

// Overlay applies only the flags the user set on top of an existing record.
func (o *ClientOptions) Overlay(cmd *cobra.Command, existing client.Client) client.Client {
	c := existing
	if o.Name != "" {
		c.Name = o.Name
	}
	if cmd.Flags().Changed("email") {
		c.Email = o.Email
	}
	if cmd.Flags().Changed("phone") {
		c.Phone = o.Phone
	}
	if cmd.Flags().Changed("notes") {
		c.Notes = o.Notes
	}
	return c
}
