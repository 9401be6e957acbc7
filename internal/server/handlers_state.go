package server

import (
	"net/http"

	"github.com/thinkscotty/contentspark/internal/config"
	"github.com/thinkscotty/contentspark/internal/models"
	"github.com/thinkscotty/contentspark/internal/state"
)

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]any{"items": s.studio.Store().History()})
}

// handleClearHistory requires confirm=true; clearing cannot be undone.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, "Clearing history requires confirm=true", http.StatusPreconditionRequired)
		return
	}
	s.studio.ClearHistory(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type themeResponse struct {
	models.ThemeSettings
	Palette config.Accent `json:"palette"`
	CSS     string        `json:"css"`
}

func (s *Server) themeResponse(t models.ThemeSettings) themeResponse {
	return themeResponse{
		ThemeSettings: t,
		Palette:       config.FindAccent(s.palette, t.Accent),
		CSS:           config.ResolveThemeCSS(t, s.palette),
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, s.themeResponse(s.studio.Store().Theme()))
}

func (s *Server) handleThemeUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode   *models.ThemeMode   `json:"mode"`
		Accent *models.AccentColor `json:"accent"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Mode != nil && !req.Mode.Valid() {
		jsonError(w, "Unknown theme mode", http.StatusBadRequest)
		return
	}
	if req.Accent != nil && !req.Accent.Valid() {
		jsonError(w, "Unknown accent color", http.StatusBadRequest)
		return
	}

	var patch state.PatchTheme
	if req.Mode != nil {
		patch.Mode = *req.Mode
	}
	if req.Accent != nil {
		patch.Accent = *req.Accent
	}
	next := s.studio.Store().Dispatch(r.Context(), patch)
	jsonResponse(w, s.themeResponse(next.Theme))
}
