package importers

import "strconv"

// ParsePocket parses a Pocket CSV export with the header row
// url,title,tags,time_added. The tags column is comma-separated and
// time_added is Unix epoch seconds.
func ParsePocket(content string) []ParsedBookmark {
	rows, ok := parseCSVRows(content, "url", "time_added")
	if !ok {
		return nil
	}

	bookmarks := make([]ParsedBookmark, 0, len(rows))
	now := importTimestamp()

	for _, row := range rows {
		if !IsValidBookmarkURL(row["url"]) {
			continue
		}

		createdAt := now
		if raw := row["time_added"]; raw != "" {
			epoch, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				// Bad date is a row-level anomaly, not a batch error.
				continue
			}
			createdAt = epochToTimestamp(epoch)
		}

		bookmarks = append(bookmarks, ParsedBookmark{
			URL:       row["url"],
			Title:     row["title"],
			Tags:      splitTags(row["tags"], ","),
			CreatedAt: createdAt,
		})
	}

	return bookmarks
}
