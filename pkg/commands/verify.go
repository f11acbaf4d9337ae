package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/access"
	"tableflip.dev/sked/pkg/commands/options"
	"tableflip.dev/sked/pkg/runner/verify"
)

func addVerify(topLevel *cobra.Command) {
	co := &options.CodeOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an access code with the remote service",
		Example: `
sked verify --code=ABC123 --given-name=Ada --last-name=Lovelace
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := verify.Verify{
				Code:        co.Code,
				GivenName:   co.GivenName,
				LastName:    co.LastName,
				Gate:        access.NewGate(cfg.VerifyURL()),
				Persistence: svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCodeArgs(cmd, co)

	addVerifyCheck(cmd)
	addLogout(cmd)

	topLevel.AddCommand(cmd)
}

func addVerifyCheck(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Re-check the stored access code against the revocation list",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := verify.Check{
				Gate:        access.NewGate(cfg.VerifyURL()),
				Persistence: svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := verify.Logout{
				Persistence: svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
