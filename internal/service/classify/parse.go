package classify

import "strings"

// extractJSONObject pulls the first JSON object out of a model response.
// Providers without an enforced JSON mode tend to wrap the object in prose
// or code fences.
func extractJSONObject(content string) string {
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(content, "}")
	if end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
