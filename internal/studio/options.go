package studio

import (
	"github.com/thinkscotty/contentspark/internal/ai"
	"github.com/thinkscotty/contentspark/internal/models"
)

// Option is one selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog lists what a generator form can offer.
type Catalog struct {
	Tones           []Option             `json:"tones"`
	ImageStyles     []Option             `json:"imageStyles"`
	QuoteCategories []Option             `json:"quoteCategories"`
	Accents         []models.AccentColor `json:"accents"`
	SampleTopics    []string             `json:"sampleTopics"`
}

func Options() Catalog {
	c := Catalog{
		Accents:      models.AccentColors,
		SampleTopics: ai.SampleTopics,
	}
	for _, t := range models.Tones {
		c.Tones = append(c.Tones, Option{Value: string(t), Label: ai.ToneLabel[t]})
	}
	for _, st := range models.ImageStyles {
		c.ImageStyles = append(c.ImageStyles, Option{Value: string(st), Label: ai.ImageStyleLabel[st]})
	}
	for _, q := range models.QuoteCategories {
		c.QuoteCategories = append(c.QuoteCategories, Option{Value: string(q), Label: ai.QuoteCategoryTitle[q]})
	}
	return c
}
