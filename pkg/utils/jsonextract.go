package utils

import (
	"regexp"
	"strings"
)

// LLM responses arrive as free text: the JSON payload may be wrapped in
// markdown fences, surrounded by prose, or carry trailing commas. These
// helpers pull out the first JSON object or array and repair the common
// artifacts before unmarshalling.

var (
	fencedObjectPattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*\\n?(\\{.*?\\})\\s*```")
	fencedArrayPattern  = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*\\n?(\\[.*?\\])\\s*```")
	trailingCommaRe     = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON returns the JSON object or array embedded in content, cleaned
// of trailing commas. Empty string when no JSON payload is present.
func ExtractJSON(content string) string {
	if m := fencedObjectPattern.FindStringSubmatch(content); len(m) > 1 {
		return stripTrailingCommas(m[1])
	}
	if m := fencedArrayPattern.FindStringSubmatch(content); len(m) > 1 {
		return stripTrailingCommas(m[1])
	}

	content = strings.TrimSpace(content)
	objStart := strings.Index(content, "{")
	arrStart := strings.Index(content, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(content, objStart, '{', '}'); end != -1 {
			return stripTrailingCommas(content[objStart : end+1])
		}
	}
	if arrStart != -1 {
		if end := findMatching(content, arrStart, '[', ']'); end != -1 {
			return stripTrailingCommas(content[arrStart : end+1])
		}
	}
	return ""
}

func stripTrailingCommas(raw string) string {
	return trailingCommaRe.ReplaceAllString(raw, "$1")
}

// findMatching returns the index of the delimiter closing s[start], tracking
// string literals and escapes so braces inside values don't miscount.
func findMatching(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
