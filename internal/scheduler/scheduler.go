package scheduler

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/thinkscotty/contentspark/internal/models"
)

// LogCleaner prunes the generation log.
type LogCleaner interface {
	CleanOldGenerationLogs(days int) error
}

// HistorySource exposes the current history.
type HistorySource interface {
	History() models.History
}

// Gauge receives the current history size.
type Gauge interface {
	SetHistoryItems(n int)
}

type Scheduler struct {
	logs          LogCleaner
	history       HistorySource
	gauge         Gauge
	interval      time.Duration
	retentionDays int
}

func New(logs LogCleaner, history HistorySource, gauge Gauge, interval time.Duration, retentionDays int) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{logs: logs, history: history, gauge: gauge, interval: interval, retentionDays: retentionDays}
}

// Run starts the housekeeping loop and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("Scheduler started", "interval", s.interval)

	// Run once immediately at startup
	s.safeTick()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.safeTick()
		}
	}
}

func (s *Scheduler) safeTick() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in scheduler tick", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	s.Tick()
}

// Tick runs one housekeeping pass.
func (s *Scheduler) Tick() {
	if s.retentionDays > 0 && s.logs != nil {
		if err := s.logs.CleanOldGenerationLogs(s.retentionDays); err != nil {
			slog.Warn("Failed to clean generation log", "error", err)
		}
	}
	if s.history != nil && s.gauge != nil {
		s.gauge.SetHistoryItems(len(s.history.History()))
	}
}
