package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer utils.Close()

			ctx, shutdown := utils.SetupGracefulShutdownWithContext()
			defer shutdown()

			if err := rt.client.Health(ctx); err != nil {
				return humanize(err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", rt.client.BaseURL())
			return err
		},
	}
}
