// Package cards renders generated items as terminal cards in the saved accent colour.
package cards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thinkscotty/contentspark/internal/ai"
	"github.com/thinkscotty/contentspark/internal/config"
	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/models"
)

var safetyColors = map[models.SafetyStatus]lipgloss.Color{
	models.SafetySafe:        lipgloss.Color("#16a34a"),
	models.SafetyNeedsReview: lipgloss.Color("#d97706"),
	models.SafetyRejected:    lipgloss.Color("#dc2626"),
}

// Renderer holds the styles derived from one theme.
type Renderer struct {
	accent config.Accent
	width  int

	border lipgloss.Style
	title  lipgloss.Style
	body   lipgloss.Style
	muted  lipgloss.Style
	tag    lipgloss.Style
	alert  lipgloss.Style
}

func NewRenderer(theme models.ThemeSettings, palette []config.Accent) *Renderer {
	accent := config.FindAccent(palette, theme.Accent)
	surface := config.SurfaceFor(theme.Mode)
	accentText := accent.Primary
	if theme.Mode == models.ModeDark {
		accentText = accent.DarkText
	}

	const width = 72
	return &Renderer{
		accent: accent,
		width:  width,
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent.BorderHex)).
			Padding(0, 1).
			Width(width),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentText)),
		body:  lipgloss.NewStyle().Foreground(lipgloss.Color(surface.Text)),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color(surface.Muted)),
		tag:   lipgloss.NewStyle().Foreground(lipgloss.Color(accentText)),
		alert: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#dc2626")).
			Foreground(lipgloss.Color("#dc2626")).
			Padding(0, 1).
			Width(width),
	}
}

// Item renders any history entry.
func (r *Renderer) Item(item models.GeneratedItem) string {
	switch it := item.(type) {
	case models.Post:
		return r.Post(it)
	case models.QuoteSet:
		return r.Quotes(it)
	case models.IllustratedText:
		return r.Illustrated(it)
	default:
		return ""
	}
}

func (r *Renderer) Post(p models.Post) string {
	badge := lipgloss.NewStyle().Bold(true).Foreground(safetyColors[p.Content.SafetyTag]).
		Render("● " + string(p.Content.SafetyTag))

	var b strings.Builder
	b.WriteString(r.title.Render(p.Content.Hook))
	b.WriteString("\n")
	b.WriteString(r.muted.Render(fmt.Sprintf("%s · %s · %s", p.Topic, ai.ToneLabel[p.Tone], ai.ImageStyleLabel[p.ImageStyle])))
	b.WriteString("\n" + badge + "\n\n")
	b.WriteString(r.body.Render(p.Content.Context))
	b.WriteString("\n")
	if p.Content.Disclaimer != "" {
		b.WriteString(r.muted.Italic(true).Render(p.Content.Disclaimer))
		b.WriteString("\n")
	}
	if len(p.Content.DiscussionPrompts) > 0 {
		b.WriteString("\n")
		for i, q := range p.Content.DiscussionPrompts {
			b.WriteString(r.body.Render(fmt.Sprintf("%d. %s", i+1, q)))
			b.WriteString("\n")
		}
	}
	if len(p.Content.Hashtags) > 0 {
		b.WriteString("\n")
		b.WriteString(r.tag.Render(hashtags(p.Content.Hashtags)))
		b.WriteString("\n")
	}
	b.WriteString(r.footer(p.ImageURL, p.ID))
	return r.border.Render(b.String())
}

func (r *Renderer) Quotes(q models.QuoteSet) string {
	var b strings.Builder
	b.WriteString(r.title.Render(ai.QuoteCategoryTitle[q.Category]))
	b.WriteString("\n\n")
	for _, quote := range q.Quotes {
		b.WriteString(r.body.Render("“" + quote + "”"))
		b.WriteString("\n")
	}
	b.WriteString(r.muted.Render(q.ID))
	return r.border.Render(b.String())
}

func (r *Renderer) Illustrated(t models.IllustratedText) string {
	var b strings.Builder
	b.WriteString(r.title.Render(t.Topic))
	b.WriteString("\n\n")
	b.WriteString(r.body.Render(t.Text))
	b.WriteString("\n")
	b.WriteString(r.footer(t.ImageURL, t.ID))
	return r.border.Render(b.String())
}

// Trends renders a numbered list; the numbers feed `generate post --from-trend`.
func (r *Renderer) Trends(trends []models.TrendItem) string {
	var b strings.Builder
	for i, t := range trends {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.title.Render(fmt.Sprintf("%d. %s", i+1, t.Keyword)))
		b.WriteString(r.muted.Render(fmt.Sprintf("  %s · %d/100", t.Source, t.Score)))
		b.WriteString("\n")
		b.WriteString(r.tag.Render(scoreBar(t.Score, 20)))
		if t.Summary != "" {
			b.WriteString("\n")
			b.WriteString(r.body.Render(t.Summary))
		}
		b.WriteString("\n")
	}
	return r.border.Render(strings.TrimRight(b.String(), "\n"))
}

// History renders every item, newest first, or the empty-state hint.
func (r *Renderer) History(h models.History, msgs *i18n.Printer) string {
	if len(h) == 0 {
		return r.border.Render(r.title.Render(msgs.T(i18n.HistoryEmpty)) + "\n" + r.muted.Render(msgs.T(i18n.HistoryEmptyHint)))
	}
	cards := make([]string, 0, len(h))
	for _, item := range h {
		cards = append(cards, r.Item(item))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (r *Renderer) Theme(t models.ThemeSettings) string {
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(r.accent.Primary)).Render("      ")
	return r.border.Render(fmt.Sprintf("%s\n%s %s  %s",
		r.title.Render(r.accent.Name),
		swatch,
		r.body.Render(string(t.Accent)),
		r.muted.Render(string(t.Mode)),
	))
}

func (r *Renderer) Error(msg string) string {
	return r.alert.Render(msg)
}

func (r *Renderer) footer(imageURL, id string) string {
	parts := []string{id}
	if imageURL != "" {
		parts = append([]string{fmt.Sprintf("image %s", humanBytes(len(imageURL)))}, parts...)
	}
	return "\n" + r.muted.Render(strings.Join(parts, " · "))
}

func hashtags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + strings.TrimPrefix(t, "#")
	}
	return strings.Join(out, " ")
}

func scoreBar(score, width int) string {
	filled := min(max(score, 0), 100) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func humanBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}
