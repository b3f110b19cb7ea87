package importers

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Regex patterns for the Netscape bookmark file format. The format is
// HTML-ish but not well-formed HTML (unclosed <DT> and <DD> tags), so a
// proper HTML parser buys nothing here.
var (
	// Matches: <DT><A HREF="..." ADD_DATE="..." TAGS="...">Title</A>
	netscapeAnchorPattern = regexp.MustCompile(`(?is)<dt[^>]*>\s*<a\s+([^>]*)>(.*?)</a>`)

	// Matches individual KEY="value" attribute pairs inside the anchor tag.
	netscapeAttrPattern = regexp.MustCompile(`(?i)([a-z_-]+)\s*=\s*"([^"]*)"`)
)

// ParseNetscape parses a Netscape bookmark export (the format produced by
// Firefox, Chrome, Safari and most bookmark managers). Entries with URLs
// that are not absolute HTTP/HTTPS are dropped. ADD_DATE is Unix epoch
// seconds; entries without one get the import time.
func ParseNetscape(content string) []ParsedBookmark {
	matches := netscapeAnchorPattern.FindAllStringSubmatch(content, -1)

	bookmarks := make([]ParsedBookmark, 0, len(matches))
	now := importTimestamp()

	for _, m := range matches {
		attrs := parseAnchorAttributes(m[1])

		href := attrs["href"]
		if !IsValidBookmarkURL(href) {
			continue
		}

		createdAt := now
		if raw, ok := attrs["add_date"]; ok {
			if epoch, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
				createdAt = epochToTimestamp(epoch)
			}
		}

		bookmarks = append(bookmarks, ParsedBookmark{
			URL:       href,
			Title:     html.UnescapeString(strings.TrimSpace(m[2])),
			Tags:      splitTags(attrs["tags"], ","),
			CreatedAt: createdAt,
		})
	}

	return bookmarks
}

func parseAnchorAttributes(raw string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range netscapeAttrPattern.FindAllStringSubmatch(raw, -1) {
		attrs[strings.ToLower(m[1])] = html.UnescapeString(m[2])
	}
	return attrs
}

// splitTags splits a delimited tag string, trimming whitespace and dropping
// empty entries. Returns an empty slice, never nil, so tag lists always
// serialize as [] rather than null.
func splitTags(raw, sep string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(raw, sep) {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
