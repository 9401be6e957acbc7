package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestContractsAreWellFormed(t *testing.T) {
	require.NoError(t, ValidateContracts())
}

func TestValidateRejectsMalformedSchemas(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
	}{
		{"undeclared required", &Schema{Name: "x", Type: TypeObject,
			Properties: map[string]*Schema{"a": {Type: TypeString}}, Order: []string{"a"}, Required: []string{"b"}}},
		{"order incomplete", &Schema{Name: "x", Type: TypeObject,
			Properties: map[string]*Schema{"a": {Type: TypeString}, "b": {Type: TypeString}}, Order: []string{"a"}}},
		{"array without items", &Schema{Name: "x", Type: TypeObject,
			Properties: map[string]*Schema{"a": {Type: TypeArray}}, Order: []string{"a"}}},
		{"enum on integer", &Schema{Name: "x", Type: TypeObject,
			Properties: map[string]*Schema{"a": {Type: TypeInteger, Enum: []string{"1"}}}, Order: []string{"a"}}},
		{"count on string", &Schema{Name: "x", Type: TypeObject,
			Properties: map[string]*Schema{"a": {Type: TypeString, Count: 3}}, Order: []string{"a"}}},
		{"unknown type", &Schema{Name: "x", Type: TypeObject,
			Properties: map[string]*Schema{"a": {Type: "float"}}, Order: []string{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.schema.validate(tt.schema.Name))
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		data    string
		wantErr bool
	}{
		{"post ok", SocialPostContentSchema, provocativePost, false},
		{"post null disclaimer", SocialPostContentSchema,
			`{"hook":"H","context":"C","discussion_prompts":[],"hashtags":[],"safety_tag":"Safe","disclaimer":null}`, false},
		{"post extra keys ignored", SocialPostContentSchema,
			`{"hook":"H","context":"C","discussion_prompts":[],"hashtags":[],"safety_tag":"Safe","mood":"x"}`, false},
		{"post null hook", SocialPostContentSchema,
			`{"hook":null,"context":"C","discussion_prompts":[],"hashtags":[],"safety_tag":"Safe"}`, true},
		{"hashtag not string", SocialPostContentSchema,
			`{"hook":"H","context":"C","discussion_prompts":[],"hashtags":[1],"safety_tag":"Safe"}`, true},
		{"top level array", QuoteListSchema, `["a"]`, true},
		{"trend ok", TrendListSchema, `{"trends":[{"keyword":"k","summary":"s","score":5,"source":"x"}]}`, false},
		{"trend fractional score", TrendListSchema, `{"trends":[{"keyword":"k","summary":"s","score":5.5,"source":"x"}]}`, true},
		{"trend missing source", TrendListSchema, `{"trends":[{"keyword":"k","summary":"s","score":5}]}`, true},
		{"invalid json", SimpleTextSchema, `{"text":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Check([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToGenAI(t *testing.T) {
	s := SocialPostContentSchema.ToGenAI()

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"hook", "context", "discussion_prompts", "hashtags", "safety_tag", "disclaimer"}, s.PropertyOrdering)
	assert.Equal(t, genai.TypeArray, s.Properties["hashtags"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["hashtags"].Items.Type)
	assert.Equal(t, []string{"Safe", "Needs Review", "Rejected"}, s.Properties["safety_tag"].Enum)
	require.NotNil(t, s.Properties["disclaimer"].Nullable)
	assert.True(t, *s.Properties["disclaimer"].Nullable)
	assert.NotContains(t, s.Required, "disclaimer")

	trend := TrendListSchema.ToGenAI().Properties["trends"].Items
	assert.Equal(t, genai.TypeInteger, trend.Properties["score"].Type)
}

func TestJSONSchema(t *testing.T) {
	s := SocialPostContentSchema.JSONSchema()

	assert.Equal(t, "object", s["type"])
	props := s["properties"].(map[string]any)
	assert.Equal(t, []string{"string", "null"}, props["disclaimer"].(map[string]any)["type"])
	assert.Equal(t, "array", props["hashtags"].(map[string]any)["type"])
	assert.Equal(t, SocialPostContentSchema.Required, s["required"])
}
