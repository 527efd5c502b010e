package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hdlc/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.BuildOptions

	cmd := &cobra.Command{
		Use:   "build [sources...]",
		Short: "Compile the libraries of the project",
		Long: "Compile the libraries of the project, packages first. Sources that did not " +
			"change since their last compilation are not compiled again.\n\n" +
			"When sources are given, only those files are compiled.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Sources = args
			return c.app.Build(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Compile even when the cache is up to date")
	cmd.Flags().StringArrayVarP(&opts.Libraries, "library", "l", nil, "Only build the named library (repeatable)")

	return cmd
}
