package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

const (
	defaultTextModel  = "gemini-2.5-flash"
	defaultImageModel = "imagen-4.0-generate-001"
)

// GeminiProvider implements Provider on top of the Google GenAI SDK.
// The API key is read from the gemini_api_key setting, then from the fallback
// configured at startup.
type GeminiProvider struct {
	settings    SettingsGetter
	fallbackKey string

	mu     sync.Mutex
	client *genai.Client
	key    string
}

// NewGeminiProvider creates a Gemini provider.
func NewGeminiProvider(sg SettingsGetter, fallbackKey string) *GeminiProvider {
	return &GeminiProvider{settings: sg, fallbackKey: fallbackKey}
}

func (g *GeminiProvider) Name() string { return "gemini" }

func (g *GeminiProvider) apiKey() string {
	if g.settings != nil {
		if key, err := g.settings.GetSetting("gemini_api_key"); err == nil && key != "" {
			return key
		}
	}
	return g.fallbackKey
}

// clientFor returns a cached client, rebuilding it when the key changes.
func (g *GeminiProvider) clientFor(ctx context.Context) (*genai.Client, error) {
	key := g.apiKey()
	if key == "" {
		return nil, errors.New("gemini API key not configured")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil && g.key == key {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	g.client, g.key = client, key
	return client, nil
}

func (g *GeminiProvider) GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error) {
	client, err := g.clientFor(ctx)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = defaultTextModel
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema.ToGenAI()
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &TextResponse{
		Text:       resp.Text(),
		TokensUsed: tokensUsed,
		Model:      model,
		Provider:   g.Name(),
	}, nil
}

func (g *GeminiProvider) GenerateImages(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	client, err := g.clientFor(ctx)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = defaultImageModel
	}

	resp, err := client.Models.GenerateImages(ctx, model, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.NumberOfImages),
		OutputMIMEType: req.OutputMIMEType,
		AspectRatio:    req.AspectRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate images: %w", err)
	}

	out := &ImageResponse{Model: model, Provider: g.Name()}
	for _, img := range resp.GeneratedImages {
		if img == nil || img.Image == nil || len(img.Image.ImageBytes) == 0 {
			continue
		}
		mime := img.Image.MIMEType
		if mime == "" {
			mime = req.OutputMIMEType
		}
		out.Images = append(out.Images, GeneratedImage{Bytes: img.Image.ImageBytes, MIMEType: mime})
	}
	return out, nil
}

// TestAPIKey verifies a Gemini API key with a minimal request.
func (g *GeminiProvider) TestAPIKey(ctx context.Context, apiKey string) error {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return fmt.Errorf("create genai client: %w", err)
	}
	_, err = client.Models.GenerateContent(ctx, defaultTextModel, genai.Text("Say hello in one word."),
		&genai.GenerateContentConfig{MaxOutputTokens: 10})
	if err != nil {
		return fmt.Errorf("API key test failed: %w", err)
	}
	return nil
}
