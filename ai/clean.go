package ai

import (
	"strings"
)

// cleanJSONContent strips markdown code fences and leading chatter that
// models sometimes wrap around JSON output.
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Drop any prefix line before the first JSON object or array.
	if !strings.HasPrefix(content, "{") && !strings.HasPrefix(content, "[") {
		if idx := strings.IndexAny(content, "{["); idx > 0 {
			prefix := content[:idx]
			if !strings.ContainsAny(prefix, "{[") {
				content = content[idx:]
			}
		}
	}

	return strings.TrimSpace(content)
}
