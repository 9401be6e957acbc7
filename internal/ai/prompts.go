package ai

import (
	"fmt"
	"strings"

	"github.com/thinkscotty/contentspark/internal/models"
)

// Prompt is a system instruction plus the user prompt for one generation call.
type Prompt struct {
	System string
	User   string
}

// Localized label tables used inside prompts.

var ToneLabel = map[models.Tone]string{
	models.ToneProvocative: "Kích thích tranh luận",
	models.ToneDebate:      "Tranh luận",
	models.ToneSatire:      "Châm biếm",
	models.TonePlayful:     "Vui tươi",
	models.ToneAnalytical:  "Phân tích",
	models.ToneNeutral:     "Trung lập",
}

var ImageStyleLabel = map[models.ImageStyle]string{
	models.StyleEditorialVector: "Vector biên tập",
	models.StyleMeme:            "Phong cách meme (không mặt)",
	models.StyleIllustration:    "Minh họa cách điệu",
	models.StyleInfographic:     "Đoạn infographic",
}

var QuoteCategoryLabel = map[models.QuoteCategory]string{
	models.QuoteTrending:   "Thịnh hành, tạo trend",
	models.QuotePhilosophy: "Triết lý sống sâu sắc",
	models.QuoteLove:       "Tình yêu lãng mạn",
	models.QuoteContrarian: "Những câu nói đi ngược lại với định nghĩa hoặc quan điểm thông thường",
	models.QuoteMotivation: "Động lực sống và phát triển bản thân",
	models.QuoteCelebrity:  "Người nổi tiếng và người của công chúng",
}

// QuoteCategoryTitle is the short display name of a category.
var QuoteCategoryTitle = map[models.QuoteCategory]string{
	models.QuoteTrending:   "Thịnh hành",
	models.QuotePhilosophy: "Triết lý sống",
	models.QuoteLove:       "Tình yêu",
	models.QuoteContrarian: "Quan điểm trái chiều",
	models.QuoteMotivation: "Động lực",
	models.QuoteCelebrity:  "Người nổi tiếng",
}

// SampleTopics are offered as one-click topics in the generator form.
var SampleTopics = []string{
	"Tương lai của làm việc từ xa",
	"Liệu AI có thể thực sự sáng tạo?",
	`Mặt trái của lối sống "healthy"`,
	"Tuần làm việc 4 ngày: Nên hay không?",
	"Du lịch một mình có thực sự an toàn?",
}

const postSystemInstruction = `Bạn là một chuyên gia sáng tạo nội dung mạng xã hội, chuyên tạo ra nội dung theo xu hướng và gây tranh luận. Mục tiêu chính của bạn là tạo ra các bài đăng hấp dẫn trong khi tuân thủ nghiêm ngặt các nguyên tắc an toàn. TOÀN BỘ ĐẦU RA PHẢI BẰNG TIẾNG VIỆT.

Quy tắc an toàn:
- KHÔNG BAO GIỜ tạo nội dung thù địch, quấy rối, phỉ báng hoặc quảng bá thông tin sai lệch.
- KHÔNG BAO GIỜ mạo danh các cá nhân có thật hoặc tạo nội dung về họ.
- LUÔN LUÔN gắn nhãn các kết quả nhạy cảm hoặc khiêu khích bằng tuyên bố miễn trừ trách nhiệm.
- Định dạng đầu ra của bạn PHẢI là một đối tượng JSON hợp lệ khớp với schema được cung cấp.`

// BuildPostPrompt constructs the prompt for a social post.
func BuildPostPrompt(topic string, tone models.Tone) Prompt {
	return Prompt{
		System: postSystemInstruction,
		User: fmt.Sprintf("Tạo một bài đăng trên mạng xã hội bằng TIẾNG VIỆT về chủ đề \"%s\" với tông giọng \"%s\". "+
			"Bài đăng phải hấp dẫn, kích thích tư duy và được thiết kế để tạo ra thảo luận.", topic, ToneLabel[tone]),
	}
}

// BuildSimpleTextPrompt constructs the prompt for a short descriptive paragraph.
func BuildSimpleTextPrompt(topic string) Prompt {
	return Prompt{
		System: "Bạn là một người kể chuyện và nhà văn sáng tạo AI. Vai trò của bạn là tạo ra những đoạn văn ngắn, " +
			"giàu hình ảnh và hấp dẫn bằng tiếng Việt. TOÀN BỘ ĐẦU RA PHẢI BẰNG TIẾNG VIỆT và là một đối tượng JSON hợp lệ.",
		User: fmt.Sprintf("Viết một đoạn văn ngắn, giàu trí tưởng tượng và mang tính mô tả (3-5 câu) về chủ đề: \"%s\".", topic),
	}
}

// BuildQuotesPrompt constructs the prompt for a list of quotes in a category.
func BuildQuotesPrompt(category models.QuoteCategory) Prompt {
	return Prompt{
		System: "Bạn là một nhà văn và nhà triết học AI, chuyên tạo ra những câu nói nguyên bản, sâu sắc và đáng nhớ. " +
			"Câu nói phải ngắn gọn, mạnh mẽ và phù hợp để chia sẻ trên mạng xã hội. " +
			"TOÀN BỘ ĐẦU RA PHẢI BẰNG TIẾNG VIỆT và là một đối tượng JSON hợp lệ.",
		User: fmt.Sprintf("Tạo một danh sách gồm chính xác %d câu nói độc đáo, sâu sắc và có khả năng gây sốt trên mạng xã hội "+
			"bằng TIẾNG VIỆT, thuộc thể loại \"%s\".", QuoteListSchema.Properties["quotes"].Count, QuoteCategoryLabel[category]),
	}
}

// BuildImagePrompt constructs the image prompt. Image models take no system instruction.
func BuildImagePrompt(topic string, style models.ImageStyle) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tạo một hình ảnh cho bài đăng trên mạng xã hội về chủ đề tiếng Việt \"%s\". ", topic)
	fmt.Fprintf(&sb, "Phong cách nên là \"%s\". ", ImageStyleLabel[style])
	sb.WriteString("Hình ảnh nên trừu tượng hoặc ẩn dụ, tránh miêu tả người thật hoặc các nhân vật của công chúng. ")
	sb.WriteString("Nó cần phải nổi bật về mặt hình ảnh và liên quan đến chủ đề.")
	return Prompt{User: sb.String()}
}

// BuildTrendsPrompt constructs the prompt for the current trending topics.
func BuildTrendsPrompt() Prompt {
	return Prompt{
		System: "Bạn là một chuyên gia phân tích xu hướng mạng xã hội tại Việt Nam. Vai trò của bạn là xác định các chủ đề " +
			"đang thịnh hành và có tiềm năng tạo ra các cuộc thảo luận sôi nổi. Cung cấp đầu ra dưới dạng JSON.",
		User: fmt.Sprintf("Liệt kê %d chủ đề đang là xu hướng hàng đầu trên mạng xã hội Việt Nam. Với mỗi chủ đề, hãy cung cấp "+
			"một bản tóm tắt ngắn gọn về lý do nó thịnh hành, một điểm xu hướng (0-100) và một nguồn có thể có "+
			"(ví dụ: 'Mạng xã hội', 'Tin tức', 'Sự kiện văn hóa'). TOÀN BỘ ĐẦU RA PHẢI BẰNG TIẾNG VIỆT.",
			TrendListSchema.Properties["trends"].Count),
	}
}
