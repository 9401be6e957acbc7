package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinkscotty/contentspark/internal/models"
)

func TestLabelTablesCoverEnums(t *testing.T) {
	for _, tone := range models.Tones {
		assert.NotEmpty(t, ToneLabel[tone], tone)
	}
	for _, style := range models.ImageStyles {
		assert.NotEmpty(t, ImageStyleLabel[style], style)
	}
	for _, c := range models.QuoteCategories {
		assert.NotEmpty(t, QuoteCategoryLabel[c], c)
		assert.NotEmpty(t, QuoteCategoryTitle[c], c)
	}
}

func TestBuildPostPrompt(t *testing.T) {
	p := BuildPostPrompt("Làm việc từ xa", models.ToneSatire)

	assert.Contains(t, p.System, "Quy tắc an toàn")
	assert.Contains(t, p.User, `"Làm việc từ xa"`)
	assert.Contains(t, p.User, `"Châm biếm"`)
}

func TestBuildQuotesPromptUsesContractCount(t *testing.T) {
	p := BuildQuotesPrompt(models.QuoteContrarian)

	assert.Contains(t, p.User, "chính xác 10 câu nói")
	assert.Contains(t, p.User, QuoteCategoryLabel[models.QuoteContrarian])
	assert.NotEmpty(t, p.System)
}

func TestBuildImagePromptHasNoSystemInstruction(t *testing.T) {
	p := BuildImagePrompt("Biển đêm", models.StyleInfographic)

	assert.Empty(t, p.System)
	assert.Contains(t, p.User, `"Biển đêm"`)
	assert.Contains(t, p.User, `"Đoạn infographic"`)
	assert.Contains(t, p.User, "tránh miêu tả người thật")
}

func TestBuildSimpleTextAndTrendsPrompts(t *testing.T) {
	assert.Contains(t, BuildSimpleTextPrompt("Mưa phố cổ").User, `"Mưa phố cổ"`)
	assert.Contains(t, BuildTrendsPrompt().User, "Liệt kê 5 chủ đề")
}
