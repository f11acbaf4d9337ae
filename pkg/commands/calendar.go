package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/runner/cal"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month grid",
		Example: `
sked calendar
sked calendar --month=1 --client=<id>
sked calendar --days
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := cal.Calendar{
				MonthOffset: mo.Offset,
				ClientID:    fo.ClientID,
				ShowDays:    mo.ShowDays,
				Service:     svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().StringVarP(&fo.ClientID, "client", "c", "all",
		"Restrict the grid to one client id.")

	topLevel.AddCommand(cmd)
}
