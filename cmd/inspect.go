package main

import (
	"github.com/spf13/cobra"
)

func inspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Prints whether each identifier type is a raw primitive or a nominal wrapper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.demonstrator(cmd)
			if err != nil {
				return err
			}

			return d.Inspect(cmd.Context())
		},
	}
}
