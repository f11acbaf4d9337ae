package options

import "github.com/spf13/cobra"

// CodeOptions captures the access verification inputs.
type CodeOptions struct {
	Code      string
	GivenName string
	LastName  string
}

// AddCodeArgs wires the verification flags.
func AddCodeArgs(cmd *cobra.Command, o *CodeOptions) {
	cmd.Flags().StringVar(&o.Code, "code", "", "Access code.")
	cmd.Flags().StringVar(&o.GivenName, "given-name", "", "Your given name.")
	cmd.Flags().StringVar(&o.LastName, "last-name", "", "Your last name.")
}

// FileOptions captures export/import destinations.
type FileOptions struct {
	Output string
	ICS    bool
}

// AddFileArgs wires the export flags.
func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		`Destination file; defaults to a dated name, "-" for stdout.`)
	cmd.Flags().BoolVar(&o.ICS, "ics", false,
		"Export an ICS calendar instead of the JSON backup.")
}

// YesOptions skips interactive confirmation prompts.
type YesOptions struct {
	Yes bool
}

// AddYesArg wires the confirmation skip flag.
func AddYesArg(cmd *cobra.Command, o *YesOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Assume yes; skip confirmation prompts.")
}
