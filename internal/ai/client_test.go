package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkscotty/contentspark/internal/config"
	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/models"
)

type fakeProvider struct {
	name    string
	text    string
	textErr error
	images  []GeneratedImage
	imgErr  error

	mu       sync.Mutex
	textReqs []TextRequest
	imgReqs  []ImageRequest
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) GenerateText(_ context.Context, req TextRequest) (*TextResponse, error) {
	f.mu.Lock()
	f.textReqs = append(f.textReqs, req)
	f.mu.Unlock()
	if f.textErr != nil {
		return nil, f.textErr
	}
	return &TextResponse{Text: f.text, TokensUsed: 42, Model: req.Model, Provider: f.name}, nil
}

func (f *fakeProvider) GenerateImages(_ context.Context, req ImageRequest) (*ImageResponse, error) {
	f.mu.Lock()
	f.imgReqs = append(f.imgReqs, req)
	f.mu.Unlock()
	if f.imgErr != nil {
		return nil, f.imgErr
	}
	return &ImageResponse{Images: f.images, Model: req.Model, Provider: f.name}, nil
}

type fakeSettings map[string]string

func (s fakeSettings) GetSetting(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

type logRecorder struct {
	mu      sync.Mutex
	entries []models.GenerationLog
}

func (l *logRecorder) LogGeneration(e models.GenerationLog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	return nil
}

func newTestClient(p Provider, log GenerationLogger) *Client {
	return NewClientWithProviders(nil, config.DefaultConfig().AI, log, i18n.NewPrinter("vi"), p)
}

const provocativePost = `{"hook":"H","context":"C","discussion_prompts":["a","b","c","d"],` +
	`"hashtags":["1","2","3","4","5","6"],"safety_tag":"Needs Review","disclaimer":"Quan điểm:"}`

func TestGeneratePostClampsLists(t *testing.T) {
	p := &fakeProvider{name: "fake", text: provocativePost}
	log := &logRecorder{}
	c := newTestClient(p, log)

	got, err := c.GeneratePost(context.Background(), "Làm việc từ xa", models.ToneProvocative)
	require.NoError(t, err)

	assert.Equal(t, "H", got.Hook)
	assert.Equal(t, []string{"a", "b", "c"}, got.DiscussionPrompts)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got.Hashtags)
	assert.Equal(t, models.SafetyNeedsReview, got.SafetyTag)
	assert.Equal(t, "Quan điểm:", got.Disclaimer)

	require.Len(t, p.textReqs, 1)
	req := p.textReqs[0]
	assert.Equal(t, "gemini-2.5-flash", req.Model)
	assert.InDelta(t, 0.8, req.Temperature, 1e-9)
	assert.Same(t, SocialPostContentSchema, req.Schema)
	assert.Contains(t, req.Prompt, "Làm việc từ xa")
	assert.Contains(t, req.Prompt, "Kích thích tranh luận")

	require.Len(t, log.entries, 1)
	assert.Equal(t, "post", log.entries[0].Kind)
	assert.Equal(t, 42, log.entries[0].TokensUsed)
	assert.Empty(t, log.entries[0].ErrorMessage)
}

func TestGeneratePostShortListsPassThrough(t *testing.T) {
	p := &fakeProvider{name: "fake", text: `{"hook":"H","context":"C","discussion_prompts":["a"],` +
		`"hashtags":[],"safety_tag":"Safe"}`}
	c := newTestClient(p, nil)

	got, err := c.GeneratePost(context.Background(), "topic", models.ToneNeutral)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.DiscussionPrompts)
	assert.Empty(t, got.Hashtags)
}

func TestGeneratePostDisclaimerOnlyForSatireAndProvocative(t *testing.T) {
	for _, tone := range models.Tones {
		t.Run(string(tone), func(t *testing.T) {
			c := newTestClient(&fakeProvider{name: "fake", text: provocativePost}, nil)

			got, err := c.GeneratePost(context.Background(), "topic", tone)
			require.NoError(t, err)
			if tone == models.ToneSatire || tone == models.ToneProvocative {
				assert.Equal(t, "Quan điểm:", got.Disclaimer)
			} else {
				assert.Empty(t, got.Disclaimer)
			}
		})
	}
}

func TestGeneratePostFailures(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		textErr error
	}{
		{"provider error", "", errors.New("quota exceeded")},
		{"not json", "Xin lỗi, tôi không thể giúp.", nil},
		{"missing required", `{"hook":"H","context":"C","hashtags":[],"safety_tag":"Safe"}`, nil},
		{"bad enum", `{"hook":"H","context":"C","discussion_prompts":[],"hashtags":[],"safety_tag":"Maybe"}`, nil},
		{"wrong type", `{"hook":1,"context":"C","discussion_prompts":[],"hashtags":[],"safety_tag":"Safe"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &logRecorder{}
			c := newTestClient(&fakeProvider{name: "fake", text: tt.text, textErr: tt.textErr}, log)

			got, err := c.GeneratePost(context.Background(), "topic", models.ToneNeutral)
			require.Error(t, err)
			assert.Equal(t, models.PostContent{}, got)

			var ge *GenerationError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, "Không thể tạo nội dung văn bản từ AI. Vui lòng thử lại.", ge.Error())
			assert.NotNil(t, errors.Unwrap(err))

			require.Len(t, log.entries, 1)
			assert.NotEmpty(t, log.entries[0].ErrorMessage)
		})
	}
}

func TestInputErrorsSkipProvider(t *testing.T) {
	p := &fakeProvider{name: "fake", text: provocativePost}
	c := newTestClient(p, nil)
	ctx := context.Background()

	_, err := c.GeneratePost(ctx, "   ", models.ToneNeutral)
	assert.True(t, IsInputError(err))
	_, err = c.GeneratePost(ctx, "topic", models.Tone("Angry"))
	assert.True(t, IsInputError(err))
	_, err = c.GenerateSimpleText(ctx, "")
	assert.True(t, IsInputError(err))
	_, err = c.GenerateImage(ctx, "", models.StyleMeme)
	assert.True(t, IsInputError(err))
	_, err = c.GenerateQuotes(ctx, models.QuoteCategory("Poetry"))
	assert.True(t, IsInputError(err))

	assert.Empty(t, p.textReqs)
	assert.Empty(t, p.imgReqs)
}

func TestGenerateQuotes(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []string
		wantErr string
	}{
		{"returned unchanged", `{"quotes":["q1","q2","q3","q4","q5","q6","q7","q8","q9","q10","q11","q12"]}`,
			[]string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9", "q10", "q11", "q12"}, ""},
		{"short list", `{"quotes":["chỉ một câu"]}`, []string{"chỉ một câu"}, ""},
		{"empty list", `{"quotes":[]}`, nil, "AI không thể tạo câu nói vào lúc này. Vui lòng thử lại."},
		{"absent list", `{}`, nil, "Không thể tạo câu nói từ AI. Vui lòng thử lại."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{name: "fake", text: tt.text}
			c := newTestClient(p, nil)

			got, err := c.GenerateQuotes(context.Background(), models.QuotePhilosophy)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsGenerationError(err))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, 0.9, p.textReqs[0].Temperature, 1e-9)
		})
	}
}

func TestGenerateSimpleText(t *testing.T) {
	c := newTestClient(&fakeProvider{name: "fake", text: "```json\n{\"text\":\"Sóng vỗ nhẹ.\"}\n```"}, nil)
	got, err := c.GenerateSimpleText(context.Background(), "Biển đêm")
	require.NoError(t, err)
	assert.Equal(t, "Sóng vỗ nhẹ.", got)

	c = newTestClient(&fakeProvider{name: "fake", text: `{"text":"  "}`}, nil)
	_, err = c.GenerateSimpleText(context.Background(), "Biển đêm")
	assert.True(t, IsGenerationError(err))
}

func TestGenerateImage(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff}
	p := &fakeProvider{name: "gemini", images: []GeneratedImage{{Bytes: payload, MIMEType: "image/jpeg"}}}
	c := newTestClient(p, nil)

	uri, err := c.GenerateImage(context.Background(), "Làm việc từ xa", models.StyleEditorialVector)
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(payload), uri)

	require.Len(t, p.imgReqs, 1)
	req := p.imgReqs[0]
	assert.Equal(t, "imagen-4.0-generate-001", req.Model)
	assert.Equal(t, 1, req.NumberOfImages)
	assert.Equal(t, "16:9", req.AspectRatio)
	assert.Equal(t, "image/jpeg", req.OutputMIMEType)
	assert.Contains(t, req.Prompt, "Vector biên tập")
}

func TestGenerateImageFailures(t *testing.T) {
	c := newTestClient(&fakeProvider{name: "gemini"}, nil)
	_, err := c.GenerateImage(context.Background(), "topic", models.StyleMeme)
	require.Error(t, err)
	assert.Equal(t, "Không có hình ảnh nào được tạo ra.", err.Error())

	c = newTestClient(&fakeProvider{name: "gemini", imgErr: errors.New("safety filter")}, nil)
	_, err = c.GenerateImage(context.Background(), "topic", models.StyleMeme)
	require.Error(t, err)
	assert.Equal(t, "Không thể tạo hình ảnh từ AI.", err.Error())
	assert.ErrorContains(t, errors.Unwrap(err), "safety filter")
}

func TestGenerateTrendsClampsScores(t *testing.T) {
	p := &fakeProvider{name: "fake", text: `{"trends":[` +
		`{"keyword":"A","summary":"s","score":140,"source":"Tin tức"},` +
		`{"keyword":"B","summary":"s","score":-3,"source":"Mạng xã hội"},` +
		`{"keyword":"C","summary":"s","score":64,"source":"Sự kiện văn hóa"}]}`}
	c := newTestClient(p, nil)

	got, err := c.GenerateTrends(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 100, got[0].Score)
	assert.Equal(t, 0, got[1].Score)
	assert.Equal(t, 64, got[2].Score)
	assert.Equal(t, "Tin tức", got[0].Source)
	assert.InDelta(t, 0.7, p.textReqs[0].Temperature, 1e-9)
}

func TestResolveProvider(t *testing.T) {
	gemini := &fakeProvider{name: "gemini"}
	ollama := &fakeProvider{name: "ollama"}
	cfg := config.DefaultConfig().AI

	c := NewClientWithProviders(fakeSettings{}, cfg, nil, nil, gemini, ollama)
	assert.Same(t, gemini, c.resolveProvider())

	c = NewClientWithProviders(fakeSettings{"ai_provider": "ollama"}, cfg, nil, nil, gemini, ollama)
	assert.Same(t, ollama, c.resolveProvider())
	assert.Same(t, gemini, c.resolveImageProvider(), "images always go to gemini")

	cfg.Provider = "ollama"
	c = NewClientWithProviders(fakeSettings{"ai_provider": ""}, cfg, nil, nil, gemini, ollama)
	assert.Same(t, ollama, c.resolveProvider())
}

func TestCallObserver(t *testing.T) {
	c := newTestClient(&fakeProvider{name: "fake", textErr: errors.New("boom")}, nil)
	var kinds []string
	c.SetCallObserver(func(kind, provider string, _ time.Duration, err error) {
		kinds = append(kinds, kind+":"+provider)
		assert.Error(t, err)
	})

	_, _ = c.GenerateTrends(context.Background())
	assert.Equal(t, []string{"trends:fake"}, kinds)
}
