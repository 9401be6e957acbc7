package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Native Ollama chat API types (unexported).

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   any             `json:"format,omitempty"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Model           string        `json:"model"`
	Message         ollamaMessage `json:"message"`
	PromptEvalCount int           `json:"prompt_eval_count"`
	EvalCount       int           `json:"eval_count"`
}

type ollamaTagsResponse struct {
	Models []ollamaModelInfo `json:"models"`
}

type ollamaModelInfo struct {
	Name    string             `json:"name"`
	Size    int64              `json:"size"`
	Details ollamaModelDetails `json:"details"`
}

type ollamaModelDetails struct {
	Family        string `json:"family"`
	ParameterSize string `json:"parameter_size"`
}

// OllamaModel describes a model installed on an Ollama server.
type OllamaModel struct {
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	ParameterSize string `json:"parameterSize"`
	Family        string `json:"family"`
}

// OllamaProvider implements Provider for a local Ollama server.
// Structured output is requested by passing the contract as the format schema.
type OllamaProvider struct {
	httpClient   *http.Client
	settings     SettingsGetter
	defaultURL   string
	defaultModel string
}

// NewOllamaProvider creates an Ollama provider. The ollama_url and ollama_model
// settings take precedence over the given defaults.
func NewOllamaProvider(sg SettingsGetter, defaultURL, defaultModel string) *OllamaProvider {
	if defaultURL == "" {
		defaultURL = "http://localhost:11434"
	}
	if defaultModel == "" {
		defaultModel = "mistral-nemo"
	}
	return &OllamaProvider{
		httpClient:   &http.Client{Timeout: 10 * time.Minute},
		settings:     sg,
		defaultURL:   defaultURL,
		defaultModel: defaultModel,
	}
}

func (o *OllamaProvider) Name() string { return "ollama" }

func (o *OllamaProvider) setting(key, fallback string) string {
	if o.settings != nil {
		if v, err := o.settings.GetSetting(key); err == nil && v != "" {
			return v
		}
	}
	return fallback
}

// GenerateText ignores req.Model; Ollama always uses the configured local model.
func (o *OllamaProvider) GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error) {
	baseURL := o.setting("ollama_url", o.defaultURL)
	model := o.setting("ollama_model", o.defaultModel)

	var msgs []ollamaMessage
	if req.SystemInstruction != "" {
		msgs = append(msgs, ollamaMessage{Role: "system", Content: req.SystemInstruction})
	}
	msgs = append(msgs, ollamaMessage{Role: "user", Content: req.Prompt})

	body := ollamaChatRequest{
		Model:    model,
		Messages: msgs,
		Stream:   false,
		Options:  &ollamaOptions{Temperature: req.Temperature},
	}
	if req.Schema != nil {
		body.Format = req.Schema.JSONSchema()
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(baseURL, "/") + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		errMsg := extractOllamaError(respBody)
		if errMsg == "" {
			errMsg = string(respBody)
		}
		slog.Error("Ollama API error", "status", resp.StatusCode, "model", model, "error", errMsg)
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, errMsg)
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("parse ollama response: %w", err)
	}

	return &TextResponse{
		Text:       chatResp.Message.Content,
		TokensUsed: chatResp.PromptEvalCount + chatResp.EvalCount,
		Model:      model,
		Provider:   o.Name(),
	}, nil
}

// GenerateImages is not supported by Ollama.
func (o *OllamaProvider) GenerateImages(context.Context, ImageRequest) (*ImageResponse, error) {
	return nil, errors.New("ollama does not support image generation")
}

// ListModels queries the Ollama server for available models.
func ListModels(ctx context.Context, baseURL string) ([]OllamaModel, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	client := &http.Client{Timeout: 10 * time.Second}
	url := strings.TrimRight(baseURL, "/") + "/api/tags"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var tagsResp ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	models := make([]OllamaModel, len(tagsResp.Models))
	for i, m := range tagsResp.Models {
		models[i] = OllamaModel{
			Name:          strings.TrimSuffix(m.Name, ":latest"),
			Size:          m.Size,
			ParameterSize: m.Details.ParameterSize,
			Family:        m.Details.Family,
		}
	}
	return models, nil
}

// extractOllamaError handles both {"error":"msg"} and {"error":{"message":"msg"}}.
func extractOllamaError(body []byte) string {
	var flat struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &flat) == nil && flat.Error != "" {
		return flat.Error
	}

	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &nested) == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}
	return ""
}
