package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePinboard(t *testing.T) {
	bookmarks := ParsePinboard(pinboardFixture)
	require.Len(t, bookmarks, 2)

	assert.Equal(t, "https://example.com/a", bookmarks[0].URL)
	assert.Equal(t, "Example A", bookmarks[0].Title)
	assert.Equal(t, "a note", bookmarks[0].Description)
	assert.Equal(t, []string{"golang", "web"}, bookmarks[0].Tags)
	// Pinboard timestamps are already ISO-8601 and pass through verbatim.
	assert.Equal(t, "2023-11-14T22:13:20Z", bookmarks[0].CreatedAt)

	// Empty extended normalizes to absent.
	assert.Empty(t, bookmarks[1].Description)
	assert.Empty(t, bookmarks[1].Tags)
}

func TestParsePinboardPreservesInFileDuplicates(t *testing.T) {
	content := `[
  {"href":"https://example.com/same","description":"First","time":"2023-01-01T00:00:00Z"},
  {"href":"https://example.com/same","description":"Second","time":"2023-01-02T00:00:00Z"}
]`

	bookmarks := ParsePinboard(content)
	// Dedup happens against the existing store only, never within one file.
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "First", bookmarks[0].Title)
	assert.Equal(t, "Second", bookmarks[1].Title)
}

func TestParsePinboardDropsInvalidURLs(t *testing.T) {
	content := `[
  {"href":"https://example.com/good","description":"Good","time":"2023-01-01T00:00:00Z"},
  {"href":"javascript:void(0)","description":"Bad","time":"2023-01-01T00:00:00Z"}
]`

	bookmarks := ParsePinboard(content)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "https://example.com/good", bookmarks[0].URL)
}

func TestParsePinboardMalformedJSON(t *testing.T) {
	assert.Empty(t, ParsePinboard("[{not json"))
}

func TestParsePinboardMissingTimeSynthesized(t *testing.T) {
	content := `[{"href":"https://example.com/x","description":"No time"}]`

	bookmarks := ParsePinboard(content)
	require.Len(t, bookmarks, 1)
	assert.NotEmpty(t, bookmarks[0].CreatedAt)
}
