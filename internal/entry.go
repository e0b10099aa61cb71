// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/moodsense/internal/catalog"
	"github.com/starford/moodsense/internal/console"
	"github.com/starford/moodsense/internal/journal"
	"github.com/starford/moodsense/internal/mood"
	"github.com/starford/moodsense/internal/report"
	"github.com/starford/moodsense/internal/sentiment"
	"github.com/starford/moodsense/internal/storage"
)

// Run starts the interactive session with the given options and blocks until
// the user exits, input ends or a shutdown signal arrives.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		in:  os.Stdin,
		out: os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logOut, closeLog, err := app.logWriter()
	if err != nil {
		return err
	}
	defer closeLog()

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("data_path", cfg.Data.Path),
		slog.String("chart_dir", cfg.ChartDir()),
		slog.Bool("catalog_watch", cfg.Catalog.Watch),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure data directory exists.
	if err := os.MkdirAll(cfg.Data.Path, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Initialize storage.
	store, err := storage.NewFS(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	cat, err := catalog.Load(store, catalog.PromptsFile, catalog.CardsFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	scorer := app.scorer
	if scorer == nil {
		scorer = sentiment.NewVader()
	}
	svc := journal.NewService(store, mood.NewClassifier(scorer), cat, journal.WithLogger(logger))

	plotOpts := []report.PlotOption{report.WithSize(cfg.Charts.WidthCM, cfg.Charts.HeightCM)}
	if cfg.Charts.Open {
		plotOpts = append(plotOpts, report.WithViewer(report.OpenWithSystemViewer))
	}
	reporter := report.NewReporter(svc.MoodLog, report.NewPlotRenderer(cfg.ChartDir(), plotOpts...))

	menu := console.New(app.in, app.out, svc, reporter, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	gCtx, cancel := context.WithCancel(gCtx)

	// Start catalog watcher.
	if cfg.Catalog.Watch {
		g.Go(func() error {
			if err := cat.Watch(gCtx, logger, nil); err != nil {
				logger.Warn("catalog watcher unavailable", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Run the menu; leaving it ends the session.
	g.Go(func() error {
		defer cancel()
		return menu.Run(gCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Session ended")
	return nil
}

// logWriter picks the log destination. Logs never share stdout with the menu.
func (a *application) logWriter() (io.Writer, func(), error) {
	if a.logOut != nil {
		return a.logOut, func() {}, nil
	}
	if a.config.App.LogFile == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(a.config.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
