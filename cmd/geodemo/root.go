package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgeo/internal/demo"
	"github.com/katalvlaran/lvgeo/internal/logging"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geodemo",
		Short: "Demonstrate shape perimeters and scene totals",
		Long: `geodemo builds unit shapes, shows how negative dimensions are rejected,
and prints the total perimeter of two scenes. It takes no arguments.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := logging.ConfigFromEnv()
			cfg.Output = cmd.ErrOrStderr()
			log := logging.NewLogger(cfg)

			return demo.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), log).Run(cmd.Context())
		},
	}
}
