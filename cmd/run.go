package main

import (
	"primobs/pkg/logger"

	"github.com/spf13/cobra"
)

func runDemo(cmd *cobra.Command, a *app) error {
	d, err := a.demonstrator(cmd)
	if err != nil {
		return err
	}

	logger.Debug(cmd.Context(), "running demo")

	return d.Run(cmd.Context())
}

func runCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Runs the demonstration (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, a)
		},
	}
}
