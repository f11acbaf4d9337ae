package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task or a client.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTask(cmd)
	addAddClient(cmd)

	topLevel.AddCommand(cmd)
}

func addAddTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "task [title]",
		Short: "Add a task for a client",
		Example: `
sked add task "Quarterly review" --client=<id> --date=2024-06-05 --start=14:30 --urgency=high --reminder=30
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			fields, err := to.Fields()
			if err != nil {
				return err
			}
			s := add.Task{
				Fields:  fields,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addAddClient(topLevel *cobra.Command) {
	co := &options.ClientOptions{}

	cmd := &cobra.Command{
		Use:   "client [name]",
		Short: "Add a client",
		Example: `
sked add client "Acme Corp" --email=ops@acme.test --phone=555-0100
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a client name")
			}
			co.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := add.Client{
				Fields:  co.Fields(),
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddClientArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
