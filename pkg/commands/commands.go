package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/printers"
	"tableflip.dev/sked/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "sked",
		Short: base.Wrap80("Client and task scheduling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addCalendar(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addRemind(topLevel)
	addVerify(topLevel)
	addProfile(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
}

// newService opens the session every command operates on.
func newService() (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.Open(cfg, printers.Notifier{})
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
