package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

func newRewriteCmd(opts *rootOptions) *cobra.Command {
	var (
		url   string
		style string
	)

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite an article and print the result",
		Long: `Rewrite an article by URL in one of the styles:
  scientific  Научно-деловой стиль
  meme        Мемный стиль
  casual      Повседневный стиль`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(url) == "" {
				return fmt.Errorf("--url is required")
			}
			parsed, err := rewrite.ParseStyle(style)
			if err != nil {
				return err
			}

			rt, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer utils.Close()

			rewriter, err := rewrite.FromConfig(rt.cfg.Rewrite, rt.client)
			if err != nil {
				return err
			}

			ctx, shutdown := utils.SetupGracefulShutdownWithContext()
			defer shutdown()

			text, err := rewriter.Rewrite(ctx, strings.TrimSpace(url), parsed)
			if err != nil {
				return humanize(err)
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, struct {
					URL   string `json:"url"`
					Style string `json:"style"`
					Text  string `json:"text"`
				}{URL: strings.TrimSpace(url), Style: parsed.String(), Text: text})
			}
			_, err = fmt.Fprintln(out, text)
			return err
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Article URL (required)")
	cmd.Flags().StringVar(&style, "style", "", "Rewrite style: scientific, meme, casual (required)")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("style")
	return cmd
}
