package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilkoid/phoenix-lab/internal/app"
	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/archive"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

func newSendCmd(opts *rootOptions) *cobra.Command {
	var (
		text     string
		file     string
		channels []string
		all      bool
		style    string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send article text to Telegram channels",
		Long: `Send article text to Telegram channels registered on the backend.

The text comes from --text or --file ("-" reads stdin).
Channels are given with --channel (repeatable) or --all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			article, err := readArticle(cmd.InOrStdin(), text, file)
			if err != nil {
				return err
			}
			if len(channels) == 0 && !all {
				return fmt.Errorf("%s: use --channel or --all", app.MsgChooseChannel)
			}

			rt, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer utils.Close()

			ctx, shutdown := utils.SetupGracefulShutdownWithContext()
			defer shutdown()

			ids := channels
			if all {
				list, err := rt.client.ListChannels(ctx)
				if err != nil {
					return humanize(err)
				}
				if len(list) == 0 {
					return fmt.Errorf("%s", app.MsgNoChannels)
				}
				ids = make([]string, 0, len(list))
				for _, ch := range list {
					ids = append(ids, ch.ID)
				}
			}

			result, err := rt.client.SendArticle(ctx, api.SendRequest{ArticleText: article, Channels: ids})
			if err != nil {
				return humanize(err)
			}

			if arch := openArchive(rt.cfg.Archive); arch != nil {
				key, err := arch.Store(ctx, archive.Entry{Text: article, Style: style, Channels: ids, SentAt: time.Now()})
				if err != nil {
					utils.Warn("Archive upload failed", "error", err)
				} else {
					utils.Info("Article archived", "key", key)
				}
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, result)
			}
			_, err = fmt.Fprintln(out, app.SendSummary(result))
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Article text")
	cmd.Flags().StringVar(&file, "file", "", `Read article text from file ("-" for stdin)`)
	cmd.Flags().StringArrayVar(&channels, "channel", nil, "Channel ID (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Send to every channel registered on the backend")
	cmd.Flags().StringVar(&style, "style", "", "Style recorded in the archive metadata")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	cmd.MarkFlagsMutuallyExclusive("channel", "all")
	return cmd
}

// readArticle берет текст статьи из флага или файла.
func readArticle(stdin io.Reader, text, file string) (string, error) {
	var article string
	switch {
	case text != "":
		article = text
	case file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		article = string(data)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read article file: %w", err)
		}
		article = string(data)
	}

	article = utils.NormalizeArticle(article)
	if article == "" {
		return "", fmt.Errorf("%s: use --text or --file", app.MsgRewriteFirst)
	}
	return article, nil
}
