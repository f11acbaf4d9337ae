package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/registry"
	"tableflip.dev/sked/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a task or a client in place.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditTask(cmd)
	addEditClient(cmd)

	topLevel.AddCommand(cmd)
}

func addEditTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	var id string

	cmd := &cobra.Command{
		Use:   "task <id>",
		Short: "Edit task fields; the pending reminder is rescheduled",
		Example: `
sked edit task <id> --start=15:00 --reminder=10
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			existing := svc.Tasks.Get(id)
			if existing == nil {
				return registry.ErrNotFound
			}
			fields, err := to.Overlay(cmd, *existing)
			if err != nil {
				return err
			}

			s := edit.Task{
				ID:      id,
				Fields:  fields,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	cmd.Flags().StringVarP(&to.Title, "title", "t", "", "New task title.")

	topLevel.AddCommand(cmd)
}

func addEditClient(topLevel *cobra.Command) {
	co := &options.ClientOptions{}
	var id string

	cmd := &cobra.Command{
		Use:   "client <id>",
		Short: "Edit client fields; identity is preserved",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a client id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			existing := svc.Clients.Get(id)
			if existing == nil {
				return registry.ErrNotFound
			}

			s := edit.Client{
				ID:      id,
				Fields:  co.Overlay(cmd, *existing),
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddClientArgs(cmd, co)
	cmd.Flags().StringVarP(&co.Name, "name", "n", "", "New client name.")

	topLevel.AddCommand(cmd)
}
