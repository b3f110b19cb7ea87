package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstapaper(t *testing.T) {
	bookmarks := ParseInstapaper(instapaperFixture)
	require.Len(t, bookmarks, 2)

	assert.Equal(t, "https://example.com/a", bookmarks[0].URL)
	assert.Equal(t, "Example A", bookmarks[0].Title)
	assert.Equal(t, "Some selected text", bookmarks[0].Description)
	assert.NotEmpty(t, bookmarks[0].CreatedAt)
}

func TestParseInstapaperFolderMapping(t *testing.T) {
	content := `URL,Title,Selection,Folder
https://example.com/a,A,,Unread
https://example.com/b,B,,Archive
https://example.com/c,C,,Tech
`

	bookmarks := ParseInstapaper(content)
	require.Len(t, bookmarks, 3)

	// Unread and Archive are Instapaper's built-in state buckets, not tags.
	assert.Empty(t, bookmarks[0].Tags)
	assert.Empty(t, bookmarks[1].Tags)
	assert.Equal(t, []string{"Tech"}, bookmarks[2].Tags)
}

func TestParseInstapaperEmptySelection(t *testing.T) {
	content := "URL,Title,Selection,Folder\nhttps://example.com/a,A,,Unread\n"

	bookmarks := ParseInstapaper(content)
	require.Len(t, bookmarks, 1)
	assert.Empty(t, bookmarks[0].Description)
}

func TestParseInstapaperDropsInvalidURLs(t *testing.T) {
	content := `URL,Title,Selection,Folder
https://example.com/good,Good,,Unread
not a url,Bad,,Unread
`

	bookmarks := ParseInstapaper(content)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "https://example.com/good", bookmarks[0].URL)
}
