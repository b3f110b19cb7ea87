package importers

import (
	"encoding/json"
	"regexp"
	"strings"
)

// netscapeAnchorHint matches the anchor-inside-definition-term markup that
// every browser bookmark export carries, even when the DOCTYPE is missing.
var netscapeAnchorHint = regexp.MustCompile(`(?is)<dt[^>]*>\s*<a\s`)

// Detect inspects raw file content and returns the recognized import format.
// Detection is content-based only; filename and content-type are never
// consulted. The checks run top-to-bottom and the first match wins.
//
// Callers must handle empty content before calling Detect - an empty file is
// a distinct error condition, not an unrecognized format.
func Detect(content string) (Format, bool) {
	if isNetscape(content) {
		return FormatNetscape, true
	}
	if isPinboard(content) {
		return FormatPinboard, true
	}

	header := firstLine(content)
	if hasCSVColumns(header, "url", "time_added") {
		return FormatPocket, true
	}
	if hasCSVColumns(header, "URL", "Folder") {
		return FormatInstapaper, true
	}

	return "", false
}

func isNetscape(content string) bool {
	if strings.Contains(strings.ToUpper(content), "NETSCAPE-BOOKMARK-FILE") {
		return true
	}
	return netscapeAnchorHint.MatchString(content)
}

// isPinboard matches a JSON array whose first element has an "href" property.
// An empty array or a first element without href is deliberately not a match:
// an ambiguous Pinboard export should be rejected rather than silently
// imported as zero bookmarks.
func isPinboard(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}

	var posts []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &posts); err != nil {
		return false
	}
	if len(posts) == 0 {
		return false
	}

	_, hasHref := posts[0]["href"]
	return hasHref
}

func firstLine(content string) string {
	if idx := strings.IndexAny(content, "\r\n"); idx >= 0 {
		return content[:idx]
	}
	return content
}

// hasCSVColumns reports whether a comma-separated header row contains all of
// the given column names. Comparison is case-sensitive so that Pocket's
// lowercase headers and Instapaper's capitalized ones stay distinct.
func hasCSVColumns(header string, columns ...string) bool {
	fields := strings.Split(header, ",")
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[strings.TrimSpace(strings.Trim(strings.TrimSpace(f), `"`))] = true
	}

	for _, col := range columns {
		if !present[col] {
			return false
		}
	}
	return true
}
