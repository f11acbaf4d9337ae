package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/runner/load"
)

func addImport(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a backup file into the current collections",
		Example: `
sked import sked-backup-2024-06-05.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := load.Import{
				Path:    path,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
