package importers

// Instapaper's built-in state buckets. A bookmark filed under one of these
// has no user-assigned folder and gets no tag.
var instapaperBuiltinFolders = map[string]bool{
	"Unread":  true,
	"Archive": true,
}

// ParseInstapaper parses an Instapaper CSV export with the header row
// URL,Title,Selection,Folder. Selection becomes the description, and the
// folder becomes a single tag unless it is one of Instapaper's built-in
// Unread/Archive buckets.
func ParseInstapaper(content string) []ParsedBookmark {
	rows, ok := parseCSVRows(content, "url", "folder")
	if !ok {
		return nil
	}

	bookmarks := make([]ParsedBookmark, 0, len(rows))
	now := importTimestamp()

	for _, row := range rows {
		if !IsValidBookmarkURL(row["url"]) {
			continue
		}

		tags := make([]string, 0, 1)
		if folder := row["folder"]; folder != "" && !instapaperBuiltinFolders[folder] {
			tags = append(tags, folder)
		}

		bookmarks = append(bookmarks, ParsedBookmark{
			URL:         row["url"],
			Title:       row["title"],
			Description: row["selection"],
			Tags:        tags,
			CreatedAt:   now,
		})
	}

	return bookmarks
}
