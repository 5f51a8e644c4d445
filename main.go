package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type rootOptions struct {
	theme       string
	contentPath string
	configPath  string
	fps         int
	verbose     bool
	noPreloader bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "An animated developer portfolio for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.theme, "theme", "auto", "Markdown rendering theme: auto, light, or dark")
	flags.StringVar(&opts.contentPath, "content", "", "content YAML to show instead of the built-in page; reloaded on save")
	flags.StringVar(&opts.configPath, "config", "", "effect settings YAML (default: settings.yaml in the user config dir)")
	flags.IntVar(&opts.fps, "fps", 0, "animation frame rate, overrides the settings file")
	flags.BoolVar(&opts.verbose, "verbose", false, "debug logging")
	flags.BoolVar(&opts.noPreloader, "no-preloader", false, "skip the loading screen")

	cmd.AddCommand(newSpringCmd(), newSettingsCmd())
	return cmd
}

func run(ctx context.Context, opts rootOptions) error {
	configDir := resolveConfigDir()
	logger, err := newLogger(filepath.Join(configDir, "folio.log"), opts.verbose)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var notice string
	settings, settingsPath, err := loadSettings(opts.configPath)
	if err != nil {
		logger.Warn("settings rejected, using defaults", zap.String("path", settingsPath), zap.Error(err))
		notice = "settings: using defaults (" + err.Error() + ")"
	}
	if opts.fps > 0 {
		settings.FPS = opts.fps
		if err := settings.Validate(); err != nil {
			return err
		}
	}
	content, err := loadContent(opts.contentPath)
	if err != nil {
		logger.Warn("content rejected, using built-in page", zap.String("path", opts.contentPath), zap.Error(err))
		notice = "content: " + err.Error()
	}
	setMarkdownTheme(markdownThemeFromString(opts.theme))

	m := newModel(modelOptions{
		settings:    settings,
		content:     content,
		logger:      logger,
		telemetry:   newTelemetryLogger(filepath.Join(configDir, "telemetry.jsonl")),
		skipPreload: opts.noPreloader,
		notice:      notice,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	logger.Info("starting", zap.Int("fps", settings.FPS), zap.String("content", opts.contentPath))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	if opts.contentPath != "" {
		g.Go(func() error {
			if err := watchContent(gctx, opts.contentPath, program.Send, logger); err != nil {
				logger.Warn("content reload disabled", zap.Error(err))
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	return g.Wait()
}
