package ai

import "strings"

// CleanJSONResponse strips markdown code fences from JSON responses.
func CleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

// ExtractJSON pulls the JSON object out of a possibly decorated model response:
// as-is, then without code fences, then between the outermost braces.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if isObject(raw) {
		return raw
	}

	cleaned := CleanJSONResponse(raw)
	if isObject(cleaned) {
		return cleaned
	}

	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			return raw[start : end+1]
		}
	}
	return cleaned
}

func isObject(s string) bool {
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}
