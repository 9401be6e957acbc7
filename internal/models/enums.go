package models

// ContentType discriminates the GeneratedItem variants.
type ContentType string

const (
	ContentSocialPost      ContentType = "SOCIAL_POST"
	ContentQuote           ContentType = "QUOTE"
	ContentIllustratedText ContentType = "ILLUSTRATED_TEXT"
)

type Tone string

const (
	ToneProvocative Tone = "Provocative"
	ToneDebate      Tone = "Debate"
	ToneSatire      Tone = "Satire"
	TonePlayful     Tone = "Playful"
	ToneAnalytical  Tone = "Analytical"
	ToneNeutral     Tone = "Neutral"
)

// Tones lists every tone in display order.
var Tones = []Tone{ToneProvocative, ToneDebate, ToneSatire, TonePlayful, ToneAnalytical, ToneNeutral}

func (t Tone) Valid() bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

// AllowsDisclaimer reports whether posts in this tone may carry a disclaimer.
func (t Tone) AllowsDisclaimer() bool {
	return t == ToneSatire || t == ToneProvocative
}

type ImageStyle string

const (
	StyleEditorialVector ImageStyle = "Editorial vector art"
	StyleMeme            ImageStyle = "Meme-style (no faces)"
	StyleIllustration    ImageStyle = "Stylized illustration"
	StyleInfographic     ImageStyle = "Infographic snippet"
)

var ImageStyles = []ImageStyle{StyleEditorialVector, StyleMeme, StyleIllustration, StyleInfographic}

func (s ImageStyle) Valid() bool {
	for _, v := range ImageStyles {
		if s == v {
			return true
		}
	}
	return false
}

// SafetyStatus is the provider-assigned classification of generated text.
type SafetyStatus string

const (
	SafetySafe        SafetyStatus = "Safe"
	SafetyNeedsReview SafetyStatus = "Needs Review"
	SafetyRejected    SafetyStatus = "Rejected"
)

var SafetyStatuses = []SafetyStatus{SafetySafe, SafetyNeedsReview, SafetyRejected}

func (s SafetyStatus) Valid() bool {
	for _, v := range SafetyStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type QuoteCategory string

const (
	QuoteTrending   QuoteCategory = "TRENDING"
	QuotePhilosophy QuoteCategory = "PHILOSOPHY"
	QuoteLove       QuoteCategory = "LOVE"
	QuoteContrarian QuoteCategory = "CONTRARIAN"
	QuoteMotivation QuoteCategory = "MOTIVATION"
	QuoteCelebrity  QuoteCategory = "CELEBRITY"
)

var QuoteCategories = []QuoteCategory{
	QuoteTrending, QuotePhilosophy, QuoteLove, QuoteContrarian, QuoteMotivation, QuoteCelebrity,
}

func (c QuoteCategory) Valid() bool {
	for _, v := range QuoteCategories {
		if c == v {
			return true
		}
	}
	return false
}

type ThemeMode string

const (
	ModeLight ThemeMode = "light"
	ModeDark  ThemeMode = "dark"
)

func (m ThemeMode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

type AccentColor string

const (
	AccentIndigo AccentColor = "indigo"
	AccentGreen  AccentColor = "green"
	AccentPurple AccentColor = "purple"
)

var AccentColors = []AccentColor{AccentIndigo, AccentGreen, AccentPurple}

func (a AccentColor) Valid() bool {
	for _, v := range AccentColors {
		if a == v {
			return true
		}
	}
	return false
}
