package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a task or a client.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveTask(cmd)
	addRemoveClient(cmd)

	topLevel.AddCommand(cmd)
}

func addRemoveTask(topLevel *cobra.Command) {
	var id string

	cmd := &cobra.Command{
		Use:   "task <id>",
		Short: "Remove a task; its pending reminder is cancelled",
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

			s := remove.Task{
				ID:      id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addRemoveClient(topLevel *cobra.Command) {
	yo := &options.YesOptions{}
	var id string

	cmd := &cobra.Command{
		Use:   "client <id>",
		Short: "Remove a client and, after confirmation, all of its tasks",
		Example: `
sked remove client <id>
sked remove client <id> --yes
`,
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

			s := remove.Client{
				ID:      id,
				Yes:     yo.Yes,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, yo)

	topLevel.AddCommand(cmd)
}
