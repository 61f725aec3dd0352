package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

func newChannelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List Telegram channels registered on the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer utils.Close()

			ctx, shutdown := utils.SetupGracefulShutdownWithContext()
			defer shutdown()

			channels, err := rt.client.ListChannels(ctx)
			if err != nil {
				return humanize(err)
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, channels)
			}
			if len(channels) == 0 {
				fmt.Fprintln(out, "Каналы не настроены. Используйте бота для добавления каналов.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, ch := range channels {
				fmt.Fprintf(w, "%s\t%s\n", ch.ID, ch.Label())
			}
			return w.Flush()
		},
	}
}
