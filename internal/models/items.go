package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// GeneratedItem is one entry of the generation history. The concrete types
// are Post, QuoteSet and IllustratedText.
type GeneratedItem interface {
	ItemID() string
	ContentType() ContentType
	isGeneratedItem()
}

// PostContent is the structured text of a social post as returned by the provider.
type PostContent struct {
	Hook              string       `json:"hook"`
	Context           string       `json:"context"`
	DiscussionPrompts []string     `json:"discussion_prompts"`
	Hashtags          []string     `json:"hashtags"`
	SafetyTag         SafetyStatus `json:"safety_tag"`
	Disclaimer        string       `json:"disclaimer,omitempty"`
}

type Post struct {
	ID         string      `json:"id"`
	Content    PostContent `json:"content"`
	ImageURL   string      `json:"imageUrl"`
	Topic      string      `json:"topic"`
	Tone       Tone        `json:"tone"`
	ImageStyle ImageStyle  `json:"imageStyle"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type QuoteSet struct {
	ID        string        `json:"id"`
	Quotes    []string      `json:"quotes"`
	Category  QuoteCategory `json:"category"`
	CreatedAt time.Time     `json:"createdAt"`
}

type IllustratedText struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Post) ItemID() string                      { return p.ID }
func (p Post) ContentType() ContentType            { return ContentSocialPost }
func (Post) isGeneratedItem()                      {}
func (q QuoteSet) ItemID() string                  { return q.ID }
func (q QuoteSet) ContentType() ContentType        { return ContentQuote }
func (QuoteSet) isGeneratedItem()                  {}
func (t IllustratedText) ItemID() string           { return t.ID }
func (t IllustratedText) ContentType() ContentType { return ContentIllustratedText }
func (IllustratedText) isGeneratedItem()           {}

// The variants carry their discriminant on the wire as "type".

func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	return json.Marshal(struct {
		Type ContentType `json:"type"`
		alias
	}{ContentSocialPost, alias(p)})
}

func (q QuoteSet) MarshalJSON() ([]byte, error) {
	type alias QuoteSet
	return json.Marshal(struct {
		Type ContentType `json:"type"`
		alias
	}{ContentQuote, alias(q)})
}

func (t IllustratedText) MarshalJSON() ([]byte, error) {
	type alias IllustratedText
	return json.Marshal(struct {
		Type ContentType `json:"type"`
		alias
	}{ContentIllustratedText, alias(t)})
}

// History is the ordered list of generated items, newest first.
type History []GeneratedItem

// UnmarshalJSON decodes each element according to its "type" field.
// An unknown type fails the whole decode.
func (h *History) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	items := make(History, 0, len(raw))
	for i, msg := range raw {
		item, err := DecodeItem(msg)
		if err != nil {
			return fmt.Errorf("history item %d: %w", i, err)
		}
		items = append(items, item)
	}
	*h = items
	return nil
}

// DecodeItem decodes a single discriminated item.
func DecodeItem(data []byte) (GeneratedItem, error) {
	var head struct {
		Type ContentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case ContentSocialPost:
		var p Post
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case ContentQuote:
		var q QuoteSet
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, err
		}
		return q, nil
	case ContentIllustratedText:
		var t IllustratedText
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", head.Type)
	}
}
