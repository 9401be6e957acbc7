// Package i18n holds the user-facing messages of the studio in Vietnamese and English.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	PostFailed        = "Could not generate the post text. Please try again."
	SimpleTextFailed  = "Could not generate text."
	QuotesFailed      = "Could not generate quotes. Please try again."
	QuotesEmpty       = "The AI could not produce quotes right now. Please try again."
	ImageFailed       = "Could not generate the image."
	ImageEmpty        = "No image was generated."
	TrendsFailed      = "Could not load trending topics. Please try again."
	TopicRequiredPost = "Please enter a topic for the post."
	TopicRequiredText = "Please enter a topic or idea."
	InvalidTone       = "Unknown tone %q."
	InvalidImageStyle = "Unknown image style %q."
	InvalidCategory   = "Unknown quote category %q."
	UnknownError      = "An unknown error occurred."
	ConfirmClear      = "Are you sure you want to clear the whole history?"
	HistoryEmpty      = "Nothing has been generated yet."
	HistoryEmptyHint  = "Go to 'Create Content' to get started!"
	Generating        = "Generating..."
	GeneratingHint    = "This may take a few minutes. Please wait."
)

var vietnamese = map[string]string{
	PostFailed:        "Không thể tạo nội dung văn bản từ AI. Vui lòng thử lại.",
	SimpleTextFailed:  "Không thể tạo văn bản từ AI.",
	QuotesFailed:      "Không thể tạo câu nói từ AI. Vui lòng thử lại.",
	QuotesEmpty:       "AI không thể tạo câu nói vào lúc này. Vui lòng thử lại.",
	ImageFailed:       "Không thể tạo hình ảnh từ AI.",
	ImageEmpty:        "Không có hình ảnh nào được tạo ra.",
	TrendsFailed:      "Không thể tạo danh sách xu hướng từ AI. Vui lòng thử lại.",
	TopicRequiredPost: "Vui lòng nhập chủ đề cho bài đăng.",
	TopicRequiredText: "Vui lòng nhập chủ đề hoặc ý tưởng.",
	InvalidTone:       "Tông giọng không hợp lệ: %q.",
	InvalidImageStyle: "Phong cách hình ảnh không hợp lệ: %q.",
	InvalidCategory:   "Thể loại câu nói không hợp lệ: %q.",
	UnknownError:      "Đã xảy ra lỗi không xác định.",
	ConfirmClear:      "Bạn có chắc chắn muốn xóa toàn bộ lịch sử không?",
	HistoryEmpty:      "Chưa có nội dung nào được tạo.",
	HistoryEmptyHint:  "Hãy vào mục 'Tạo Nội Dung' để bắt đầu sáng tạo!",
	Generating:        "Đang tạo...",
	GeneratingHint:    "Quá trình này có thể mất một vài phút. Vui lòng chờ.",
}

var cat = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range vietnamese {
		b.SetString(language.Vietnamese, key, msg)
		b.SetString(language.English, key, key)
	}
	return b
}

// Printer renders messages for one locale.
type Printer struct {
	p   *message.Printer
	tag language.Tag
}

// NewPrinter returns a printer for the given locale ("vi", "en", "vi-VN", ...).
// Unknown or unsupported locales fall back to Vietnamese.
func NewPrinter(locale string) *Printer {
	tag := language.Vietnamese
	if t, err := language.Parse(locale); err == nil {
		matcher := language.NewMatcher([]language.Tag{language.Vietnamese, language.English})
		_, idx, conf := matcher.Match(t)
		if conf != language.No && idx == 1 {
			tag = language.English
		}
	}
	return &Printer{p: message.NewPrinter(tag, message.Catalog(cat)), tag: tag}
}

// T returns the localized message for key, formatted with args.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

func (p *Printer) Lang() string {
	return p.tag.String()
}
