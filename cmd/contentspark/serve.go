package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinkscotty/contentspark/internal/auth"
	"github.com/thinkscotty/contentspark/internal/scheduler"
	"github.com/thinkscotty/contentspark/internal/server"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func runServe(parent context.Context, flags *rootFlags) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	a, err := openApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.close()

	slog.Info("Starting ContentSpark", "version", version, "storage", a.cfg.Storage.Driver, "locale", a.msgs.Lang())

	if err := seedAPIKey(a); err != nil {
		return err
	}

	a.metrics.SetHistoryItems(len(a.store.History()))
	sched := scheduler.New(a.db, a.store, a.metrics,
		time.Duration(a.cfg.Maintenance.IntervalMinutes)*time.Minute, a.cfg.Maintenance.LogRetentionDays)
	go sched.Run(ctx)

	srv := server.New(a.cfg, a.db, a.studio, a.ai, a.palette, a.metrics, version)

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}
		slog.Info("Shutting down...")
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// seedAPIKey stores the hash of a configured API key when none is stored yet.
func seedAPIKey(a *app) error {
	if a.cfg.Server.APIKey == "" {
		return nil
	}
	existing, err := a.db.GetSetting(auth.SettingKey)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read api key hash: %w", err)
	}
	if existing != "" && auth.CheckKey(a.cfg.Server.APIKey, existing) == nil {
		return nil
	}
	hash, err := auth.HashKey(a.cfg.Server.APIKey)
	if err != nil {
		return fmt.Errorf("hash api key: %w", err)
	}
	if err := a.db.SetSetting(auth.SettingKey, hash); err != nil {
		return fmt.Errorf("store api key hash: %w", err)
	}
	slog.Info("API key configured from config file")
	return nil
}
