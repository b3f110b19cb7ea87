package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePocket(t *testing.T) {
	bookmarks := ParsePocket(pocketFixture)
	require.Len(t, bookmarks, 2)

	assert.Equal(t, "https://example.com/a", bookmarks[0].URL)
	assert.Equal(t, "Example A", bookmarks[0].Title)
	assert.Equal(t, []string{"golang", "web"}, bookmarks[0].Tags)
	assert.Empty(t, bookmarks[1].Tags)
}

func TestParsePocketEpochConversion(t *testing.T) {
	content := "url,title,tags,time_added\nhttps://example.com/a,Example,,1700000000\n"

	bookmarks := ParsePocket(content)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "2023-11-14T22:13:20.000Z", bookmarks[0].CreatedAt)
}

func TestParsePocketQuotedFields(t *testing.T) {
	content := `url,title,tags,time_added
https://example.com/a,"""Quoted"" Title","tag,with,commas",1700000000
https://example.org/b,"Title, with a comma",,1700000001
`

	bookmarks := ParsePocket(content)
	require.Len(t, bookmarks, 2)
	assert.Equal(t, `"Quoted" Title`, bookmarks[0].Title)
	assert.Equal(t, []string{"tag", "with", "commas"}, bookmarks[0].Tags)
	assert.Equal(t, "Title, with a comma", bookmarks[1].Title)
}

func TestParsePocketDropsInvalidURLs(t *testing.T) {
	content := `url,title,tags,time_added
https://example.com/good,Good,,1700000000
javascript:void(0),Bad,,1700000000
`

	bookmarks := ParsePocket(content)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "https://example.com/good", bookmarks[0].URL)
}

func TestParsePocketSkipsBadTimestampRows(t *testing.T) {
	content := `url,title,tags,time_added
https://example.com/good,Good,,1700000000
https://example.org/bad,Bad date,,not-a-number
`

	bookmarks := ParsePocket(content)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "https://example.com/good", bookmarks[0].URL)
}

func TestParsePocketMissingHeader(t *testing.T) {
	assert.Empty(t, ParsePocket("some,other,header\na,b,c\n"))
}
