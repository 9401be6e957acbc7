package ai

import "context"

// SettingsGetter is a minimal interface so the ai package does not import database.
type SettingsGetter interface {
	GetSetting(key string) (string, error)
}

// Provider is the interface that all generation backends must implement.
type Provider interface {
	GenerateText(ctx context.Context, req TextRequest) (*TextResponse, error)
	GenerateImages(ctx context.Context, req ImageRequest) (*ImageResponse, error)
	Name() string // "gemini" or "ollama"
}

// TextRequest is a provider-agnostic structured text request.
type TextRequest struct {
	Model             string // empty means the provider default
	Prompt            string
	SystemInstruction string
	Schema            *Schema // response contract; nil for free text
	Temperature       float64
}

// TextResponse carries the raw text returned by the provider.
type TextResponse struct {
	Text       string
	TokensUsed int
	Model      string
	Provider   string
}

// ImageRequest asks for one or more images.
type ImageRequest struct {
	Model          string
	Prompt         string
	NumberOfImages int
	AspectRatio    string // e.g. "16:9"
	OutputMIMEType string // e.g. "image/jpeg"
}

type ImageResponse struct {
	Images   []GeneratedImage
	Model    string
	Provider string
}

type GeneratedImage struct {
	Bytes    []byte
	MIMEType string
}
