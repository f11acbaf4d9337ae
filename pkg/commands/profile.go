package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/runner/prof"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := prof.Show{
				Persistence: svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addProfileSet(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileSet(topLevel *cobra.Command) {
	var name, email, avatar string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields; setting a name leaves guest mode",
		Example: `
sked profile set --name="Ada Lovelace" --avatar=🚀
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := prof.Set{
				Name:        name,
				Email:       email,
				Avatar:      avatar,
				Persistence: svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name.")
	cmd.Flags().StringVar(&email, "email", "", "Contact email.")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar emoji.")

	topLevel.AddCommand(cmd)
}
