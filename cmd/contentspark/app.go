package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/thinkscotty/contentspark/internal/ai"
	"github.com/thinkscotty/contentspark/internal/cards"
	"github.com/thinkscotty/contentspark/internal/config"
	"github.com/thinkscotty/contentspark/internal/database"
	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/metrics"
	"github.com/thinkscotty/contentspark/internal/state"
	"github.com/thinkscotty/contentspark/internal/storage"
	"github.com/thinkscotty/contentspark/internal/studio"
)

// app wires the services shared by every command.
type app struct {
	cfg     config.Config
	db      *database.DB
	store   *state.Store
	ai      *ai.Client
	studio  *studio.Studio
	metrics *metrics.Metrics
	msgs    *i18n.Printer
	palette []config.Accent
	closers []func() error
}

func openApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	setupLogging(cfg.Logging.Level)

	if err := ai.ValidateContracts(); err != nil {
		return nil, fmt.Errorf("response contracts: %w", err)
	}

	palette, err := config.LoadPalette(flags.palettePath)
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a := &app{cfg: cfg, db: db, palette: palette, closers: []func() error{db.Close}}

	kv, err := a.openKV(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	a.msgs = i18n.NewPrinter(cfg.Locale)
	a.metrics = metrics.New()
	a.store = state.Restore(ctx, storage.NewPersistence(kv))
	a.ai = ai.NewClient(db, cfg.AI, db, a.msgs)
	a.ai.SetCallObserver(a.metrics.ObserveProviderCall)
	a.studio = studio.New(a.ai, a.store, a.metrics, a.msgs)
	return a, nil
}

// openKV selects the backend of the history and theme slots.
func (a *app) openKV(ctx context.Context) (storage.KV, error) {
	switch a.cfg.Storage.Driver {
	case "", "sqlite":
		return storage.NewSQLStore(a.db), nil
	case "redis":
		rs, err := storage.NewRedisStore(ctx, a.cfg.Storage.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, rs.Close)
		slog.Info("Using redis storage", "addr", a.cfg.Storage.Redis.Addr)
		return rs, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *app) renderer() *cards.Renderer {
	return cards.NewRenderer(a.store.Theme(), a.palette)
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Close failed", "error", err)
		}
	}
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}
