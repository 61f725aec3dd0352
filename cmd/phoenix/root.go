package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ilkoid/phoenix-lab/internal/app"
	"github.com/ilkoid/phoenix-lab/internal/ui"
	"github.com/ilkoid/phoenix-lab/pkg/api"
	"github.com/ilkoid/phoenix-lab/pkg/archive"
	"github.com/ilkoid/phoenix-lab/pkg/config"
	"github.com/ilkoid/phoenix-lab/pkg/prefs"
	"github.com/ilkoid/phoenix-lab/pkg/rewrite"
	"github.com/ilkoid/phoenix-lab/pkg/utils"
)

// rootOptions — глобальные флаги, общие для всех подкоманд.
type rootOptions struct {
	configPath string
	apiURL     string
	logDir     string
	mock       bool
	debug      bool
	json       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "phoenix",
		Short: "Phoenix Lab: AI рерайт статей и рассылка в Telegram",
		Long: `Phoenix Lab переписывает статью по URL в выбранном стиле
и рассылает результат в Telegram каналы, зарегистрированные на backend.

Без подкоманды запускается интерактивная форма в терминале.

Examples:
  phoenix                                          # TUI
  phoenix channels                                 # Список каналов
  phoenix rewrite --url https://example.com/a --style meme
  phoenix send --file article.txt --channel -100123 --channel -100456
  PHOENIX_API_URL=http://10.0.0.5:5000 phoenix health`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config.yaml (default: $PHOENIX_CONFIG or ./config.yaml)")
	flags.StringVar(&opts.apiURL, "api-url", "", "Override backend base URL")
	flags.StringVar(&opts.logDir, "log-dir", "", "Directory for log files (default: app.log_dir or current dir)")
	flags.BoolVar(&opts.mock, "mock", false, "Use canned rewrite texts instead of the backend")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.json, "json", false, "Print command results as JSON")

	cmd.AddCommand(
		newChannelsCmd(opts),
		newRewriteCmd(opts),
		newSendCmd(opts),
		newHealthCmd(opts),
	)
	return cmd
}

// cliEnv — собранные зависимости команды.
type cliEnv struct {
	cfg     *config.AppConfig
	cfgPath string
	client  *api.Client
}

// bootstrap загружает конфиг, применяет флаги, поднимает логгер и
// создает клиент backend. Вызывающий закрывает лог через utils.Close.
func (o *rootOptions) bootstrap() (*cliEnv, error) {
	cfg, cfgPath, err := config.Initialize(&config.DefaultPathFinder{ConfigFlag: o.configPath})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if o.apiURL != "" {
		cfg.Backend.BaseURL = strings.TrimRight(o.apiURL, "/")
	}
	if o.mock {
		cfg.Rewrite.Mode = config.RewriteModeMock
	}
	logDir := cfg.App.LogDir
	if o.logDir != "" {
		logDir = o.logDir
	}

	if err := utils.InitLoggerIn(logDir); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	utils.SetDebug(o.debug || cfg.App.Debug)
	utils.Info("Config loaded", "path", cfgPath, "base_url", cfg.Backend.BaseURL, "rewrite_mode", cfg.Rewrite.Mode)

	client, err := api.NewFromConfig(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	return &cliEnv{cfg: cfg, cfgPath: cfgPath, client: client}, nil
}

// openPrefs открывает хранилище темы. При ошибке тема живет только
// до выхода из программы.
func openPrefs(cfg config.PrefsConfig) prefs.Store {
	store, err := prefs.OpenSQLite(cfg.Path)
	if err != nil {
		utils.Warn("Prefs store unavailable, theme will not persist", "path", cfg.Path, "error", err)
		return prefs.NewMemoryStore()
	}
	return store
}

// openArchive создает архив отправленных статей, если он включен.
func openArchive(cfg config.ArchiveConfig) archive.Archiver {
	if !cfg.Enabled {
		return nil
	}
	client, err := archive.New(cfg)
	if err != nil {
		utils.Warn("Archive disabled", "error", err)
		return nil
	}
	utils.Info("Archive enabled", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	return client
}

func runTUI(opts *rootOptions) error {
	rt, err := opts.bootstrap()
	if err != nil {
		return err
	}
	defer utils.Close()

	rewriter, err := rewrite.FromConfig(rt.cfg.Rewrite, rt.client)
	if err != nil {
		return err
	}
	timeout, err := rt.cfg.Backend.TimeoutDuration()
	if err != nil {
		return err
	}

	store := openPrefs(rt.cfg.Prefs)
	defer store.Close()

	state := app.NewAppState(app.Deps{
		API:      rt.client,
		Rewriter: rewriter,
		Prefs:    store,
		Archive:  openArchive(rt.cfg.Archive),
		Timeout:  timeout,
	})
	state.LoadTheme(context.Background())

	utils.Info("Starting TUI", "theme", state.Theme)
	p := tea.NewProgram(ui.InitialModel(state, rt.cfg.UI), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		utils.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	utils.Info("Application exited normally")
	return nil
}
