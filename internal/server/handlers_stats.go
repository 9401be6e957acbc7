package server

import (
	"log/slog"
	"net/http"

	"github.com/thinkscotty/contentspark/internal/models"
)

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetStats()
	if err != nil {
		slog.Error("Failed to get stats", "error", err)
		jsonError(w, "Internal error", http.StatusInternalServerError)
		return
	}

	recent, err := s.db.RecentGenerations(20)
	if err != nil {
		slog.Error("Failed to get recent generations", "error", err)
	}

	jsonResponse(w, map[string]any{
		"campaigns":   models.SampleCampaigns(),
		"stats":       stats,
		"recent":      recent,
		"historySize": len(s.studio.Store().History()),
	})
}
