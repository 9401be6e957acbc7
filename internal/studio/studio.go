// Package studio runs the user-facing generation operations: it validates the
// request, fans out the provider calls, and records complete results in the
// application state.
package studio

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/thinkscotty/contentspark/internal/ai"
	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/metrics"
	"github.com/thinkscotty/contentspark/internal/models"
	"github.com/thinkscotty/contentspark/internal/state"
)

// Generator is the per-kind generation capability; implemented by *ai.Client.
type Generator interface {
	GeneratePost(ctx context.Context, topic string, tone models.Tone) (models.PostContent, error)
	GenerateSimpleText(ctx context.Context, topic string) (string, error)
	GenerateQuotes(ctx context.Context, category models.QuoteCategory) ([]string, error)
	GenerateImage(ctx context.Context, topic string, style models.ImageStyle) (string, error)
	GenerateTrends(ctx context.Context) ([]models.TrendItem, error)
}

type PostRequest struct {
	Topic      string            `json:"topic" validate:"topic"`
	Tone       models.Tone       `json:"tone" validate:"tone"`
	ImageStyle models.ImageStyle `json:"imageStyle" validate:"image_style"`
}

type IllustratedRequest struct {
	Topic string `json:"topic" validate:"topic"`
}

type QuotesRequest struct {
	Category models.QuoteCategory `json:"category" validate:"quote_category"`
}

type Studio struct {
	gen     Generator
	store   *state.Store
	metrics *metrics.Metrics
	msgs    *i18n.Printer
	now     func() time.Time
}

// New creates a studio. m may be nil.
func New(gen Generator, store *state.Store, m *metrics.Metrics, msgs *i18n.Printer) *Studio {
	if msgs == nil {
		msgs = i18n.NewPrinter("vi")
	}
	m.SetHistoryItems(len(store.History()))
	return &Studio{gen: gen, store: store, metrics: m, msgs: msgs, now: time.Now}
}

func (s *Studio) Store() *state.Store { return s.store }

// CreateSocialPost generates the post text and its image concurrently. The
// post is recorded only when both succeed; the first failure cancels the other call.
func (s *Studio) CreateSocialPost(ctx context.Context, req PostRequest) (post models.Post, err error) {
	defer func() { s.metrics.ObserveOperation("social_post", err) }()

	if err := s.validateRequest(req, i18n.TopicRequiredPost); err != nil {
		return models.Post{}, err
	}
	topic := strings.TrimSpace(req.Topic)

	var (
		content models.PostContent
		image   string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.gen.GeneratePost(gctx, topic, req.Tone)
		if err != nil {
			return err
		}
		content = c
		return nil
	})
	g.Go(func() error {
		img, err := s.gen.GenerateImage(gctx, topic, req.ImageStyle)
		if err != nil {
			return err
		}
		image = img
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Post{}, err
	}

	created := s.now()
	post = models.Post{
		ID:         newID(created),
		Content:    content,
		ImageURL:   image,
		Topic:      topic,
		Tone:       req.Tone,
		ImageStyle: req.ImageStyle,
		CreatedAt:  created,
	}
	s.record(ctx, post)
	return post, nil
}

// CreateIllustratedText generates a short paragraph and a stylized illustration concurrently.
func (s *Studio) CreateIllustratedText(ctx context.Context, req IllustratedRequest) (item models.IllustratedText, err error) {
	defer func() { s.metrics.ObserveOperation("illustrated_text", err) }()

	if err := s.validateRequest(req, i18n.TopicRequiredText); err != nil {
		return models.IllustratedText{}, err
	}
	topic := strings.TrimSpace(req.Topic)

	var text, image string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.gen.GenerateSimpleText(gctx, topic)
		if err != nil {
			return err
		}
		text = t
		return nil
	})
	g.Go(func() error {
		img, err := s.gen.GenerateImage(gctx, topic, models.StyleIllustration)
		if err != nil {
			return err
		}
		image = img
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.IllustratedText{}, err
	}

	created := s.now()
	item = models.IllustratedText{
		ID:        newID(created),
		Topic:     topic,
		Text:      text,
		ImageURL:  image,
		CreatedAt: created,
	}
	s.record(ctx, item)
	return item, nil
}

func (s *Studio) CreateQuotes(ctx context.Context, req QuotesRequest) (set models.QuoteSet, err error) {
	defer func() { s.metrics.ObserveOperation("quotes", err) }()

	if err := s.validateRequest(req, ""); err != nil {
		return models.QuoteSet{}, err
	}

	quotes, err := s.gen.GenerateQuotes(ctx, req.Category)
	if err != nil {
		return models.QuoteSet{}, err
	}

	created := s.now()
	set = models.QuoteSet{
		ID:        newID(created),
		Quotes:    quotes,
		Category:  req.Category,
		CreatedAt: created,
	}
	s.record(ctx, set)
	return set, nil
}

// Trends lists trending topics. They are not recorded in history.
func (s *Studio) Trends(ctx context.Context) (trends []models.TrendItem, err error) {
	defer func() { s.metrics.ObserveOperation("trends", err) }()
	return s.gen.GenerateTrends(ctx)
}

// ClearHistory empties the history. Callers confirm with the user first.
func (s *Studio) ClearHistory(ctx context.Context) {
	st := s.store.Dispatch(ctx, state.ClearHistory{})
	s.metrics.SetHistoryItems(len(st.History))
}

func (s *Studio) record(ctx context.Context, item models.GeneratedItem) {
	st := s.store.Dispatch(ctx, state.AddItem{Item: item})
	s.metrics.SetHistoryItems(len(st.History))
}

// newID is the creation timestamp plus a random suffix, so items created in
// the same instant stay distinct.
func newID(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano) + "-" + uuid.NewString()[:8]
}

var _ Generator = (*ai.Client)(nil)
