package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/thinkscotty/contentspark/internal/models"
)

const (
	HistoryKey = "contentSparkHistory"
	ThemeKey   = "contentSparkTheme"
)

// Persistence mirrors the history and theme slots to a KV backend.
type Persistence struct {
	kv KV
}

func NewPersistence(kv KV) *Persistence {
	return &Persistence{kv: kv}
}

// SaveHistory serializes the full history. Failures are logged and swallowed.
func (p *Persistence) SaveHistory(ctx context.Context, items models.History) {
	if items == nil {
		items = models.History{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		slog.Error("Could not serialize history", "error", err)
		return
	}
	if err := p.kv.Set(ctx, HistoryKey, string(data)); err != nil {
		slog.Error("Could not save history", "error", err)
	}
}

// LoadHistory returns the stored history, or an empty history when nothing is
// stored or the stored value cannot be read.
func (p *Persistence) LoadHistory(ctx context.Context) models.History {
	raw, ok := p.load(ctx, HistoryKey)
	if !ok {
		return models.History{}
	}

	var items models.History
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Error("Could not load history, starting empty", "error", err)
		return models.History{}
	}
	if items == nil {
		return models.History{}
	}
	return items
}

// SaveTheme serializes the theme settings. Failures are logged and swallowed.
func (p *Persistence) SaveTheme(ctx context.Context, theme models.ThemeSettings) {
	data, err := json.Marshal(theme)
	if err != nil {
		slog.Error("Could not serialize theme", "error", err)
		return
	}
	if err := p.kv.Set(ctx, ThemeKey, string(data)); err != nil {
		slog.Error("Could not save theme", "error", err)
	}
}

// LoadTheme returns the stored theme, or the default theme when nothing valid is stored.
func (p *Persistence) LoadTheme(ctx context.Context) models.ThemeSettings {
	raw, ok := p.load(ctx, ThemeKey)
	if !ok {
		return models.DefaultTheme()
	}

	var theme models.ThemeSettings
	if err := json.Unmarshal([]byte(raw), &theme); err != nil {
		slog.Error("Could not load theme, using default", "error", err)
		return models.DefaultTheme()
	}
	if !theme.Valid() {
		slog.Warn("Stored theme has unknown values, using default", "mode", theme.Mode, "accent", theme.Accent)
		return models.DefaultTheme()
	}
	return theme
}

func (p *Persistence) load(ctx context.Context, key string) (string, bool) {
	raw, err := p.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("Could not read from storage", "key", key, "error", err)
		}
		return "", false
	}
	if raw == "" {
		return "", false
	}
	return raw, true
}
