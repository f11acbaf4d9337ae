package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/sked/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List themes and show the active one",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := theme.List{
				Persistence: svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addThemeSet(cmd)

	topLevel.AddCommand(cmd)
}

func addThemeSet(topLevel *cobra.Command) {
	var primary, gradientStart, gradientEnd string

	cmd := &cobra.Command{
		Use:   "set [name]",
		Short: "Activate a preset theme, or build a custom one",
		Example: `
sked theme set ocean
sked theme set --primary="#ff5722" --gradient-start="#1a1a2e" --gradient-end="#16213e"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one theme name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" && primary == "" {
				return errors.New("theme: name a preset or pass --primary")
			}

			svc, _, err := newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			s := theme.Set{
				Name:          name,
				Primary:       primary,
				GradientStart: gradientStart,
				GradientEnd:   gradientEnd,
				Persistence:   svc.Store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&primary, "primary", "", "Custom primary color, hex.")
	cmd.Flags().StringVar(&gradientStart, "gradient-start", "", "Custom gradient start, hex.")
	cmd.Flags().StringVar(&gradientEnd, "gradient-end", "", "Custom gradient end, hex.")

	topLevel.AddCommand(cmd)
}
