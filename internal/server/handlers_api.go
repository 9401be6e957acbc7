package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/thinkscotty/contentspark/internal/ai"
	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/studio"
)

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req studio.PostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := s.studio.CreateSocialPost(r.Context(), req)
	if err != nil {
		s.generationError(w, err)
		return
	}
	jsonCreated(w, post)
}

func (s *Server) handleCreateQuotes(w http.ResponseWriter, r *http.Request) {
	var req studio.QuotesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	set, err := s.studio.CreateQuotes(r.Context(), req)
	if err != nil {
		s.generationError(w, err)
		return
	}
	jsonCreated(w, set)
}

func (s *Server) handleCreateIllustrated(w http.ResponseWriter, r *http.Request) {
	var req studio.IllustratedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := s.studio.CreateIllustratedText(r.Context(), req)
	if err != nil {
		s.generationError(w, err)
		return
	}
	jsonCreated(w, item)
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := s.studio.Trends(r.Context())
	if err != nil {
		s.generationError(w, err)
		return
	}
	jsonResponse(w, map[string]any{"trends": trends})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, studio.Options())
}

// generationError maps studio failures to status codes. Only the localized
// message is returned; causes stay in the log.
func (s *Server) generationError(w http.ResponseWriter, err error) {
	var ie *ai.InputError
	var ge *ai.GenerationError
	switch {
	case errors.As(err, &ie):
		jsonError(w, ie.Message, http.StatusBadRequest)
	case errors.As(err, &ge):
		jsonError(w, ge.Message, http.StatusBadGateway)
	case errors.Is(err, context.Canceled):
		jsonError(w, err.Error(), http.StatusRequestTimeout)
	default:
		slog.Error("API: generation failed", "error", err)
		jsonError(w, i18n.NewPrinter(s.cfg.Locale).T(i18n.UnknownError), http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		jsonError(w, "Invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func jsonResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonCreated(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
