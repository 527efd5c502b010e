package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hdlc/internal/app"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	var opts app.DepsOptions

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List the dependencies of every source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Deps(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Libraries, "library", "l", nil, "Only list the named library (repeatable)")

	return cmd
}
