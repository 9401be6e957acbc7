package models

import "time"

type ThemeSettings struct {
	Mode   ThemeMode   `json:"mode"`
	Accent AccentColor `json:"accent"`
}

// DefaultTheme is used when no theme has been saved yet.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{Mode: ModeLight, Accent: AccentIndigo}
}

func (t ThemeSettings) Valid() bool {
	return t.Mode.Valid() && t.Accent.Valid()
}

// TrendItem is a trending topic reported by the provider. Trends are never persisted.
type TrendItem struct {
	Keyword string `json:"keyword"`
	Score   int    `json:"score"`
	Source  string `json:"source"`
	Summary string `json:"summary,omitempty"`
}

type CampaignMetric struct {
	Name           string  `json:"name"`
	EngagementRate float64 `json:"engagementRate"`
	CTR            float64 `json:"ctr"`
	Comments       int     `json:"comments"`
}

// SampleCampaigns is the demo data shown in the analytics table.
func SampleCampaigns() []CampaignMetric {
	return []CampaignMetric{
		{Name: "AI trong nghệ thuật", EngagementRate: 12.5, CTR: 5.2, Comments: 204},
		{Name: "Làm việc từ xa", EngagementRate: 9.8, CTR: 4.1, Comments: 156},
		{Name: "Thời trang bền vững", EngagementRate: 15.2, CTR: 6.8, Comments: 312},
		{Name: "Tuần làm việc", EngagementRate: 11.1, CTR: 4.9, Comments: 189},
		{Name: "Gaming", EngagementRate: 8.5, CTR: 3.5, Comments: 121},
	}
}

// GenerationLog records one provider call.
type GenerationLog struct {
	ID           int64     `json:"id"`
	Kind         string    `json:"kind"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	TokensUsed   int       `json:"tokens_used"`
	DurationMs   int64     `json:"duration_ms"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Stats struct {
	TotalRequests     int   `json:"total_requests"`
	FailedRequests    int   `json:"failed_requests"`
	TotalTokensUsed   int   `json:"total_tokens_used"`
	DatabaseSizeBytes int64 `json:"database_size_bytes"`
}
