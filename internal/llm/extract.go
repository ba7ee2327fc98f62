package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON recovers a JSON value from a model completion that nominally
// contains "only JSON" but may in practice be wrapped in prose or markdown
// fencing. It tries, in order: a direct parse of the trimmed content, the
// interior of the first fenced code block, and the slice from the first "{"
// to the last "}". Returns nil when all three fail. This is a best-effort
// heuristic, not a general JSON-in-text scanner: unrelated braces around the
// intended object can defeat the third strategy, which then falls through to
// nil rather than guessing further.
func ExtractJSON(content string) any {
	trimmed := strings.TrimSpace(content)

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		return v
	}

	if m := fencePattern.FindStringSubmatch(trimmed); m != nil && m[1] != "" {
		if err := json.Unmarshal([]byte(m[1]), &v); err == nil {
			return v
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(trimmed[start:end+1]), &v); err == nil {
			return v
		}
	}

	return nil
}

// CleanJSONBlock strips markdown code fencing from a response. Models often
// wrap JSON in ```json blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
