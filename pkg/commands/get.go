package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List tasks or clients.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGetTasks(cmd)
	addGetClients(cmd)

	topLevel.AddCommand(cmd)
}

func addGetTasks(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "List tasks, filtered and display sorted",
		Example: `
sked get tasks
sked get tasks --view=upcoming
sked get tasks --view=urgent --client=<id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := fo.GetView()
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := get.Tasks{
				View:     view,
				ClientID: fo.ClientID,
				ShowID:   io.ShowID,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addGetClients(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "List clients, name sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := get.Clients{
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
