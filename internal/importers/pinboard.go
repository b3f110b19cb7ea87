package importers

import (
	"encoding/json"
	"strings"
)

// pinboardPost is the raw shape of one entry in a Pinboard JSON export.
// It never leaks past this parser.
type pinboardPost struct {
	Href        string `json:"href"`
	Description string `json:"description"` // Pinboard's name for the title
	Extended    string `json:"extended"`    // Pinboard's name for the note/description
	Tags        string `json:"tags"`        // space-separated
	Time        string `json:"time"`        // already ISO-8601
}

// ParsePinboard parses a Pinboard JSON export. Duplicate URLs within the
// same file are preserved as separate entries: deduplication happens against
// the existing store only, never within a single parse.
func ParsePinboard(content string) []ParsedBookmark {
	var posts []pinboardPost
	if err := json.Unmarshal([]byte(content), &posts); err != nil {
		return nil
	}

	bookmarks := make([]ParsedBookmark, 0, len(posts))
	now := importTimestamp()

	for _, post := range posts {
		if !IsValidBookmarkURL(post.Href) {
			continue
		}

		createdAt := post.Time
		if createdAt == "" {
			createdAt = now
		}

		bookmarks = append(bookmarks, ParsedBookmark{
			URL:         post.Href,
			Title:       strings.TrimSpace(post.Description),
			Description: strings.TrimSpace(post.Extended),
			Tags:        splitTags(post.Tags, " "),
			CreatedAt:   createdAt,
		})
	}

	return bookmarks
}
