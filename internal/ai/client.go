package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thinkscotty/contentspark/internal/config"
	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/models"
)

const (
	postTemperature   = 0.8
	textTemperature   = 0.8
	quoteTemperature  = 0.9
	trendsTemperature = 0.7
)

var errNoImages = errors.New("no images returned")

// GenerationLogger records every provider call; implemented by *database.DB.
type GenerationLogger interface {
	LogGeneration(entry models.GenerationLog) error
}

// CallObserver is notified after every provider call.
type CallObserver func(kind, provider string, elapsed time.Duration, err error)

// Client is the main AI entry point. It routes requests to the configured
// provider, then parses and checks the structured responses.
type Client struct {
	providers map[string]Provider
	fallback  Provider
	settings  SettingsGetter
	cfg       config.AIConfig
	log       GenerationLogger
	msgs      *i18n.Printer
	observe   CallObserver
}

// NewClient creates a client backed by Gemini and Ollama.
func NewClient(sg SettingsGetter, cfg config.AIConfig, log GenerationLogger, msgs *i18n.Printer) *Client {
	return NewClientWithProviders(sg, cfg, log, msgs,
		NewGeminiProvider(sg, cfg.GeminiAPIKey),
		NewOllamaProvider(sg, cfg.OllamaURL, cfg.OllamaModel),
	)
}

// NewClientWithProviders creates a client over explicit providers. The first
// provider is used when neither settings nor config select one.
func NewClientWithProviders(sg SettingsGetter, cfg config.AIConfig, log GenerationLogger, msgs *i18n.Printer, providers ...Provider) *Client {
	c := &Client{
		providers: make(map[string]Provider, len(providers)),
		settings:  sg,
		cfg:       cfg,
		log:       log,
		msgs:      msgs,
	}
	for _, p := range providers {
		c.providers[p.Name()] = p
	}
	if len(providers) > 0 {
		c.fallback = providers[0]
	}
	if c.msgs == nil {
		c.msgs = i18n.NewPrinter("vi")
	}
	return c
}

// SetCallObserver installs fn to be called after each provider call.
func (c *Client) SetCallObserver(fn CallObserver) { c.observe = fn }

// resolveProvider picks the text provider: the ai_provider setting, then config.
func (c *Client) resolveProvider() Provider {
	name := ""
	if c.settings != nil {
		name, _ = c.settings.GetSetting("ai_provider")
	}
	if name == "" {
		name = c.cfg.Provider
	}
	if p, ok := c.providers[name]; ok {
		return p
	}
	return c.fallback
}

// resolveImageProvider prefers Gemini, the only backend that renders images.
func (c *Client) resolveImageProvider() Provider {
	if p, ok := c.providers["gemini"]; ok {
		return p
	}
	return c.resolveProvider()
}

// GeneratePost produces the text of a social post.
func (c *Client) GeneratePost(ctx context.Context, topic string, tone models.Tone) (models.PostContent, error) {
	var content models.PostContent
	if strings.TrimSpace(topic) == "" {
		return content, &InputError{Message: c.msgs.T(i18n.TopicRequiredPost)}
	}
	if !tone.Valid() {
		return content, &InputError{Message: c.msgs.T(i18n.InvalidTone, string(tone))}
	}

	prompt := BuildPostPrompt(topic, tone)
	if err := c.generateJSON(ctx, "post", prompt, SocialPostContentSchema, postTemperature, &content); err != nil {
		return models.PostContent{}, c.fail("post", i18n.PostFailed, err)
	}

	if len(content.DiscussionPrompts) > 3 {
		content.DiscussionPrompts = content.DiscussionPrompts[:3]
	}
	if len(content.Hashtags) > 5 {
		content.Hashtags = content.Hashtags[:5]
	}
	if !tone.AllowsDisclaimer() {
		content.Disclaimer = ""
	}
	return content, nil
}

// GenerateSimpleText produces a short descriptive paragraph.
func (c *Client) GenerateSimpleText(ctx context.Context, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", &InputError{Message: c.msgs.T(i18n.TopicRequiredText)}
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := c.generateJSON(ctx, "text", BuildSimpleTextPrompt(topic), SimpleTextSchema, textTemperature, &out); err != nil {
		return "", c.fail("text", i18n.SimpleTextFailed, err)
	}
	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", c.fail("text", i18n.SimpleTextFailed, errors.New("empty text in response"))
	}
	return text, nil
}

// GenerateQuotes produces quotes for a category. The list is returned as the
// provider sent it; only an empty list is rejected.
func (c *Client) GenerateQuotes(ctx context.Context, category models.QuoteCategory) ([]string, error) {
	if !category.Valid() {
		return nil, &InputError{Message: c.msgs.T(i18n.InvalidCategory, string(category))}
	}

	var out struct {
		Quotes []string `json:"quotes"`
	}
	if err := c.generateJSON(ctx, "quotes", BuildQuotesPrompt(category), QuoteListSchema, quoteTemperature, &out); err != nil {
		return nil, c.fail("quotes", i18n.QuotesFailed, err)
	}
	if len(out.Quotes) == 0 {
		return nil, c.fail("quotes", i18n.QuotesEmpty, errors.New("empty quote list in response"))
	}
	return out.Quotes, nil
}

// GenerateImage renders one image and returns it as a data URI.
func (c *Client) GenerateImage(ctx context.Context, topic string, style models.ImageStyle) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", &InputError{Message: c.msgs.T(i18n.TopicRequiredPost)}
	}
	if !style.Valid() {
		return "", &InputError{Message: c.msgs.T(i18n.InvalidImageStyle, string(style))}
	}

	provider := c.resolveImageProvider()
	if provider == nil {
		return "", c.fail("image", i18n.ImageFailed, errors.New("no provider configured"))
	}

	start := time.Now()
	resp, err := provider.GenerateImages(ctx, ImageRequest{
		Model:          c.cfg.ImageModel,
		Prompt:         BuildImagePrompt(topic, style).User,
		NumberOfImages: 1,
		AspectRatio:    c.cfg.AspectRatio,
		OutputMIMEType: c.cfg.ImageMIMEType,
	})
	model := c.cfg.ImageModel
	if resp != nil && resp.Model != "" {
		model = resp.Model
	}
	if err == nil && (resp == nil || len(resp.Images) == 0) {
		err = errNoImages
	}
	c.record("image", provider.Name(), model, 0, start, err)
	if errors.Is(err, errNoImages) {
		return "", c.fail("image", i18n.ImageEmpty, err)
	}
	if err != nil {
		return "", c.fail("image", i18n.ImageFailed, err)
	}

	img := resp.Images[0]
	mime := img.MIMEType
	if mime == "" {
		mime = c.cfg.ImageMIMEType
	}
	if mime == "" {
		mime = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Bytes)), nil
}

// GenerateTrends lists the current trending topics with scores clamped to 0-100.
func (c *Client) GenerateTrends(ctx context.Context) ([]models.TrendItem, error) {
	var out struct {
		Trends []models.TrendItem `json:"trends"`
	}
	if err := c.generateJSON(ctx, "trends", BuildTrendsPrompt(), TrendListSchema, trendsTemperature, &out); err != nil {
		return nil, c.fail("trends", i18n.TrendsFailed, err)
	}
	for i := range out.Trends {
		out.Trends[i].Score = min(max(out.Trends[i].Score, 0), 100)
	}
	return out.Trends, nil
}

// generateJSON calls the text provider and decodes a contract-checked response into dst.
func (c *Client) generateJSON(ctx context.Context, kind string, prompt Prompt, schema *Schema, temperature float64, dst any) error {
	provider := c.resolveProvider()
	if provider == nil {
		return errors.New("no provider configured")
	}

	start := time.Now()
	resp, err := provider.GenerateText(ctx, TextRequest{
		Model:             c.cfg.TextModel,
		Prompt:            prompt.User,
		SystemInstruction: prompt.System,
		Schema:            schema,
		Temperature:       temperature,
	})
	if err != nil {
		c.record(kind, provider.Name(), c.cfg.TextModel, 0, start, err)
		return err
	}

	err = decodeChecked(resp.Text, schema, dst)
	c.record(kind, resp.Provider, resp.Model, resp.TokensUsed, start, err)
	if err != nil {
		return fmt.Errorf("%s response from %s: %w", kind, provider.Name(), err)
	}
	return nil
}

func decodeChecked(raw string, schema *Schema, dst any) error {
	text := ExtractJSON(raw)
	if text == "" {
		return errors.New("empty response")
	}
	if err := schema.Check([]byte(text)); err != nil {
		return err
	}
	return json.Unmarshal([]byte(text), dst)
}

// fail logs the cause and wraps it behind a localized message.
func (c *Client) fail(kind, key string, cause error) error {
	slog.Error("Generation failed", "kind", kind, "error", cause)
	return &GenerationError{Kind: kind, Message: c.msgs.T(key), Cause: cause}
}

func (c *Client) record(kind, provider, model string, tokens int, start time.Time, callErr error) {
	elapsed := time.Since(start)
	if c.observe != nil {
		c.observe(kind, provider, elapsed, callErr)
	}
	if c.log == nil {
		return
	}
	entry := models.GenerationLog{
		Kind:       kind,
		Provider:   provider,
		Model:      model,
		TokensUsed: tokens,
		DurationMs: elapsed.Milliseconds(),
	}
	if callErr != nil {
		entry.ErrorMessage = callErr.Error()
	}
	if err := c.log.LogGeneration(entry); err != nil {
		slog.Warn("Failed to record generation", "kind", kind, "error", err)
	}
}

// ListOllamaModels queries the configured Ollama server for available models.
func (c *Client) ListOllamaModels(ctx context.Context) ([]OllamaModel, error) {
	baseURL := c.cfg.OllamaURL
	if c.settings != nil {
		if v, err := c.settings.GetSetting("ollama_url"); err == nil && v != "" {
			baseURL = v
		}
	}
	return ListModels(ctx, baseURL)
}

// TestGeminiKey verifies a Gemini API key.
func (c *Client) TestGeminiKey(ctx context.Context, apiKey string) error {
	g, ok := c.providers["gemini"].(*GeminiProvider)
	if !ok {
		return errors.New("gemini provider not configured")
	}
	return g.TestAPIKey(ctx, apiKey)
}
