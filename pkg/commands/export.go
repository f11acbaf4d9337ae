package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the JSON backup or an ICS calendar",
		Example: `
sked export
sked export --ics
sked export -o - > backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := export.Export{
				ICS:     fo.ICS,
				Output:  fo.Output,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFileArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
