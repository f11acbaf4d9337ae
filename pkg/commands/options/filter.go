package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/registry"
)

// FilterOptions captures the task listing filters.
type FilterOptions struct {
	View     string
	ClientID string
}

// AddFilterArgs wires the view and client filter flags.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.View, "view", "v", string(registry.ViewAll),
		"One of all, upcoming, low, medium, high, urgent.")
	cmd.Flags().StringVarP(&o.ClientID, "client", "c", registry.AllClients,
		"Restrict to one client id.")
}

// GetView validates the view flag.
func (o *FilterOptions) GetView() (registry.View, error) {
	return registry.ParseView(o.View)
}

// IDOptions carries the show-id toggle used by listing commands.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the id toggle on the provided command.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show record ids; needed for edit and remove.")
}

// MonthOptions selects a calendar month relative to now.
type MonthOptions struct {
	Offset   int
	ShowDays bool
}

// AddMonthArgs wires the month navigation flags.
func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().IntVarP(&o.Offset, "month", "m", 0,
		"Month offset from now: -1 previous, 1 next, 0 current.")
	cmd.Flags().BoolVar(&o.ShowDays, "days", false,
		"Also list the preview lines for each day carrying tasks.")
}
