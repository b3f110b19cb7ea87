package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	netscapeFixture = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com/a" ADD_DATE="1700000000" TAGS="golang,web">Example A</A>
    <DT><A HREF="https://example.org/b" ADD_DATE="1700000001">Example B</A>
</DL><p>
`

	pinboardFixture = `[
  {"href":"https://example.com/a","description":"Example A","extended":"a note","tags":"golang web","time":"2023-11-14T22:13:20Z"},
  {"href":"https://example.org/b","description":"Example B","extended":"","tags":"","time":"2023-11-15T08:00:00Z"}
]`

	pocketFixture = `url,title,tags,time_added
https://example.com/a,Example A,"golang,web",1700000000
https://example.org/b,Example B,,1700000001
`

	instapaperFixture = `URL,Title,Selection,Folder
https://example.com/a,Example A,Some selected text,Tech
https://example.org/b,Example B,,Unread
`
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		ok      bool
	}{
		{"netscape export", netscapeFixture, FormatNetscape, true},
		{"netscape without doctype", `<DL><DT><A HREF="https://example.com">x</A></DL>`, FormatNetscape, true},
		{"pinboard export", pinboardFixture, FormatPinboard, true},
		{"pocket export", pocketFixture, FormatPocket, true},
		{"instapaper export", instapaperFixture, FormatInstapaper, true},
		{"empty string", "", "", false},
		{"empty json array", "[]", "", false},
		{"json array without href", `[{"url":"https://example.com"}]`, "", false},
		{"plain text", "just some text\nwith lines", "", false},
		{"malformed json", "[{", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := Detect(tt.content)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestDetectOrderNetscapeWins(t *testing.T) {
	// A file carrying the Netscape marker must resolve as netscape even if
	// later checks could also match.
	content := "<!DOCTYPE NETSCAPE-Bookmark-file-1>\nurl,time_added\n"
	format, ok := Detect(content)
	assert.True(t, ok)
	assert.Equal(t, FormatNetscape, format)
}
