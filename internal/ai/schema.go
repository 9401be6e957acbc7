package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"google.golang.org/genai"

	"github.com/thinkscotty/contentspark/internal/models"
)

type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
)

// Schema declares the JSON shape expected back from the provider.
// Count documents the intended array length; it is not enforced here.
type Schema struct {
	Name        string
	Type        SchemaType
	Description string
	Enum        []string
	Items       *Schema
	Properties  map[string]*Schema
	Order       []string // property order for rendering
	Required    []string
	Nullable    bool
	Count       int
}

var (
	SocialPostContentSchema = &Schema{
		Name: "SocialPostContent",
		Type: TypeObject,
		Properties: map[string]*Schema{
			"hook": {
				Type:        TypeString,
				Description: "Một dòng thu hút sự chú ý bằng tiếng Việt cho bài đăng trên mạng xã hội.",
			},
			"context": {
				Type:        TypeString,
				Description: "1-2 câu ngữ cảnh ngắn gọn bằng tiếng Việt (tối đa 140 ký tự).",
			},
			"discussion_prompts": {
				Type:        TypeArray,
				Items:       &Schema{Type: TypeString},
				Description: "Chính xác 3 câu hỏi mở bằng tiếng Việt để khơi gợi thảo luận.",
				Count:       3,
			},
			"hashtags": {
				Type:        TypeArray,
				Items:       &Schema{Type: TypeString},
				Description: "Chính xác 5 hashtag liên quan bằng tiếng Việt, không dấu, được tối ưu hóa để tương tác.",
				Count:       5,
			},
			"safety_tag": {
				Type: TypeString,
				Enum: []string{string(models.SafetySafe), string(models.SafetyNeedsReview), string(models.SafetyRejected)},
				Description: fmt.Sprintf("Phân loại an toàn. Sử dụng '%s' cho nội dung khiêu khích, tranh luận hoặc châm biếm. "+
					"Sử dụng '%s' cho nội dung vi phạm quy tắc an toàn. Sử dụng '%s' cho tất cả các nội dung khác.",
					models.SafetyNeedsReview, models.SafetyRejected, models.SafetySafe),
			},
			"disclaimer": {
				Type: TypeString,
				Description: "Nếu tông giọng là 'Châm biếm' hoặc 'Kích thích tranh luận', hãy thêm một tuyên bố miễn trừ trách nhiệm " +
					"bằng tiếng Việt như 'Quan điểm:' hoặc 'Châm biếm:'. Nếu không, đây phải là một chuỗi rỗng.",
				Nullable: true,
			},
		},
		Order:    []string{"hook", "context", "discussion_prompts", "hashtags", "safety_tag", "disclaimer"},
		Required: []string{"hook", "context", "discussion_prompts", "hashtags", "safety_tag"},
	}

	SimpleTextSchema = &Schema{
		Name: "SimpleText",
		Type: TypeObject,
		Properties: map[string]*Schema{
			"text": {
				Type:        TypeString,
				Description: "Một đoạn văn ngắn, giàu trí tưởng tượng và mang tính mô tả bằng tiếng Việt (khoảng 3-5 câu) về chủ đề được cung cấp.",
			},
		},
		Order:    []string{"text"},
		Required: []string{"text"},
	}

	QuoteListSchema = &Schema{
		Name: "QuoteList",
		Type: TypeObject,
		Properties: map[string]*Schema{
			"quotes": {
				Type:  TypeArray,
				Items: &Schema{Type: TypeString},
				Description: "Một danh sách gồm chính xác 10 câu nói, trích dẫn hoặc triết lý sâu sắc, độc đáo và nguyên bản " +
					"bằng tiếng Việt, phù hợp với thể loại được yêu cầu.",
				Count: 10,
			},
		},
		Order:    []string{"quotes"},
		Required: []string{"quotes"},
	}

	TrendListSchema = &Schema{
		Name: "TrendList",
		Type: TypeObject,
		Properties: map[string]*Schema{
			"trends": {
				Type:  TypeArray,
				Count: 5,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"keyword": {Type: TypeString, Description: "Từ khóa chính của xu hướng bằng tiếng Việt."},
						"summary": {Type: TypeString, Description: "Tóm tắt ngắn gọn (1-2 câu) lý do xu hướng này thịnh hành."},
						"score":   {Type: TypeInteger, Description: "Điểm xu hướng từ 0 đến 100, thể hiện mức độ phổ biến."},
						"source": {
							Type:        TypeString,
							Description: "Nguồn gốc hoặc loại xu hướng (ví dụ: Mạng xã hội, Tin tức, Sự kiện văn hóa).",
						},
					},
					Order:    []string{"keyword", "summary", "score", "source"},
					Required: []string{"keyword", "summary", "score", "source"},
				},
			},
		},
		Order:    []string{"trends"},
		Required: []string{"trends"},
	}
)

// Contracts lists every response contract.
func Contracts() []*Schema {
	return []*Schema{SocialPostContentSchema, SimpleTextSchema, QuoteListSchema, TrendListSchema}
}

// ValidateContracts checks that every contract is well formed. It is run once at startup.
func ValidateContracts() error {
	for _, c := range Contracts() {
		if c.Type != TypeObject {
			return fmt.Errorf("contract %s: top level must be an object", c.Name)
		}
		if err := c.validate(c.Name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validate(path string) error {
	switch s.Type {
	case TypeObject:
		if len(s.Properties) == 0 {
			return fmt.Errorf("%s: object without properties", path)
		}
		for _, r := range s.Required {
			if _, ok := s.Properties[r]; !ok {
				return fmt.Errorf("%s: required property %q is not declared", path, r)
			}
		}
		if len(s.Order) != len(s.Properties) {
			return fmt.Errorf("%s: property order lists %d of %d properties", path, len(s.Order), len(s.Properties))
		}
		for _, name := range s.Order {
			prop, ok := s.Properties[name]
			if !ok {
				return fmt.Errorf("%s: ordered property %q is not declared", path, name)
			}
			if err := prop.validate(path + "." + name); err != nil {
				return err
			}
		}
	case TypeArray:
		if s.Items == nil {
			return fmt.Errorf("%s: array without item schema", path)
		}
		if err := s.Items.validate(path + "[]"); err != nil {
			return err
		}
	case TypeString, TypeInteger:
	default:
		return fmt.Errorf("%s: unknown type %q", path, s.Type)
	}

	if len(s.Enum) > 0 && s.Type != TypeString {
		return fmt.Errorf("%s: enum on non-string type", path)
	}
	if s.Count > 0 && s.Type != TypeArray {
		return fmt.Errorf("%s: count on non-array type", path)
	}
	return nil
}

// ToGenAI converts the contract into a Gemini response schema.
func (s *Schema) ToGenAI() *genai.Schema {
	out := &genai.Schema{
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
	}
	switch s.Type {
	case TypeObject:
		out.Type = genai.TypeObject
	case TypeArray:
		out.Type = genai.TypeArray
	case TypeInteger:
		out.Type = genai.TypeInteger
	default:
		out.Type = genai.TypeString
	}
	if s.Nullable {
		out.Nullable = genai.Ptr(true)
	}
	if s.Items != nil {
		out.Items = s.Items.ToGenAI()
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.ToGenAI()
		}
		out.PropertyOrdering = s.Order
	}
	return out
}

// JSONSchema renders the contract as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	out := map[string]any{}
	if s.Nullable {
		out["type"] = []string{string(s.Type), "null"}
	} else {
		out["type"] = string(s.Type)
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
		out["required"] = s.Required
	}
	return out
}

// Check verifies that data honours the contract: required properties are present,
// primitive types match and enum values are allowed. Extra properties are ignored.
func (s *Schema) Check(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode %s: %w", s.Name, err)
	}
	return s.check(v, s.Name)
}

func (s *Schema) check(v any, path string) error {
	if v == nil {
		if s.Nullable {
			return nil
		}
		return fmt.Errorf("%s: null value", path)
	}

	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %T", path, v)
		}
		for _, r := range s.Required {
			if _, ok := obj[r]; !ok {
				return fmt.Errorf("%s: missing required property %q", path, r)
			}
		}
		for name, prop := range s.Properties {
			if val, ok := obj[name]; ok {
				if err := prop.check(val, path+"."+name); err != nil {
					return err
				}
			}
		}
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", path, v)
		}
		for i, item := range arr {
			if err := s.Items.check(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case TypeString:
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", path, v)
		}
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, str) {
			return fmt.Errorf("%s: value %q not in %v", path, str, s.Enum)
		}
	case TypeInteger:
		n, ok := v.(json.Number)
		if !ok {
			return fmt.Errorf("%s: expected integer, got %T", path, v)
		}
		if _, err := n.Int64(); err != nil {
			return fmt.Errorf("%s: expected integer, got %s", path, n)
		}
	}
	return nil
}
