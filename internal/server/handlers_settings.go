package server

import (
	"log/slog"
	"net/http"
	"strings"
)

var settingsKeys = []string{
	"ai_provider",
	"gemini_api_key",
	"ollama_url",
	"ollama_model",
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	settings := s.db.GetSettings(settingsKeys...)
	if key := settings["gemini_api_key"]; key != "" {
		settings["gemini_api_key"] = maskKey(key)
	}
	jsonResponse(w, settings)
}

func (s *Server) handleSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if !decodeBody(w, r, &req) {
		return
	}

	if p, ok := req["ai_provider"]; ok && p != "" && p != "gemini" && p != "ollama" {
		jsonError(w, "ai_provider must be gemini or ollama", http.StatusBadRequest)
		return
	}

	for _, key := range settingsKeys {
		value, ok := req[key]
		if !ok {
			continue
		}
		// a masked key echoed back from a read leaves the stored key alone
		if key == "gemini_api_key" && strings.HasPrefix(value, maskPrefix) {
			continue
		}
		if err := s.db.SetSetting(key, value); err != nil {
			slog.Error("Failed to save setting", "key", key, "error", err)
			jsonError(w, "Failed to save settings", http.StatusInternalServerError)
			return
		}
	}
	s.handleSettings(w, r)
}

func (s *Server) handleGeminiKeyTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey string `json:"gemini_api_key"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.APIKey == "" {
		jsonError(w, "Please enter an API key first", http.StatusBadRequest)
		return
	}

	if err := s.ai.TestGeminiKey(r.Context(), req.APIKey); err != nil {
		slog.Error("API key test failed", "error", err)
		jsonError(w, "API key test failed", http.StatusBadGateway)
		return
	}
	jsonResponse(w, map[string]bool{"valid": true})
}

func (s *Server) handleOllamaModels(w http.ResponseWriter, r *http.Request) {
	models, err := s.ai.ListOllamaModels(r.Context())
	if err != nil {
		slog.Error("Ollama model listing failed", "error", err)
		jsonError(w, "Could not reach Ollama", http.StatusBadGateway)
		return
	}
	jsonResponse(w, map[string]any{"models": models})
}

const maskPrefix = "****"

// maskKey keeps the last four characters of a secret.
func maskKey(key string) string {
	if len(key) <= 4 {
		return maskPrefix
	}
	return maskPrefix + key[len(key)-4:]
}
