package importers

import (
	"net/url"
	"strings"
)

// BaseURL reduces a URL to its deduplication key: scheme + host + path, with
// the query string and fragment stripped. Two URLs differing only in
// tracking parameters compare equal. Returns false for anything that is not
// an absolute HTTP/HTTPS URL.
func BaseURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host + u.Path, true
}

// IsValidBookmarkURL reports whether raw is an absolute HTTP/HTTPS URL.
// Parsers use it to drop entries that should never enter the pipeline.
func IsValidBookmarkURL(raw string) bool {
	_, ok := BaseURL(raw)
	return ok
}

// Partition splits parsed bookmarks into entries missing from the store and
// a count of duplicates, comparing by base URL against the existing set.
//
// The fresh list is not deduplicated against itself: a file that contains
// the same URL twice yields two entries, and record creation must tolerate
// the redundant create. Invalid URLs on either side never match.
func Partition(parsed []ParsedBookmark, existingBaseURLs []string) ([]ParsedBookmark, int) {
	existing := make(map[string]bool, len(existingBaseURLs))
	for _, raw := range existingBaseURLs {
		if base, ok := BaseURL(raw); ok {
			existing[base] = true
		}
	}

	fresh := make([]ParsedBookmark, 0, len(parsed))
	skipped := 0

	for _, b := range parsed {
		base, ok := BaseURL(b.URL)
		if ok && existing[base] {
			skipped++
			continue
		}
		fresh = append(fresh, b)
	}

	return fresh, skipped
}

// Parse dispatches content to the parser for the given format.
func Parse(format Format, content string) []ParsedBookmark {
	switch format {
	case FormatNetscape:
		return ParseNetscape(content)
	case FormatPinboard:
		return ParsePinboard(content)
	case FormatPocket:
		return ParsePocket(content)
	case FormatInstapaper:
		return ParseInstapaper(content)
	default:
		return nil
	}
}
