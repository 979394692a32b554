// Package jsonutil recovers JSON objects from model output that may be
// wrapped in markdown code fences or embedded in prose.
package jsonutil

import (
	"fmt"
	"strings"
)

// StripMarkdownFences removes a ```json ... ``` or ``` ... ``` wrapper.
// Returns the original text when no fences are found.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}

	endIdx := len(lines) - 1
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			endIdx = i
			break
		}
	}

	return strings.Join(lines[1:endIdx], "\n")
}

// ExtractObject returns the substring from the first '{' to the last '}'
// of text, for model answers that wrap their JSON object in prose.
func ExtractObject(text string) (string, error) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", fmt.Errorf("no JSON object found")
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", fmt.Errorf("no closing } found")
	}
	return text[start : end+1], nil
}
