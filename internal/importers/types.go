package importers

import "time"

// Format identifies a recognized bookmark export format.
type Format string

const (
	FormatNetscape   Format = "netscape"
	FormatPinboard   Format = "pinboard"
	FormatPocket     Format = "pocket"
	FormatInstapaper Format = "instapaper"
)

// Formats lists all supported import formats.
func Formats() []Format {
	return []Format{FormatNetscape, FormatPinboard, FormatPocket, FormatInstapaper}
}

// ParsedBookmark is the normalized representation every parser produces.
// Each import source implements a parser that transforms its native
// format into this common representation.
type ParsedBookmark struct {
	URL         string   `json:"url"`
	Title       string   `json:"title,omitempty"`       // empty string means absent
	Description string   `json:"description,omitempty"` // empty string means absent
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"` // ISO-8601
}

// timestampLayout is the ISO-8601 layout used for all synthesized and
// converted timestamps, e.g. "2023-11-14T22:13:20.000Z".
const timestampLayout = "2006-01-02T15:04:05.000Z"

// epochToTimestamp converts Unix epoch seconds to an ISO-8601 string.
func epochToTimestamp(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format(timestampLayout)
}

// importTimestamp returns the current time as an ISO-8601 string. Parsers
// use it when the source format carries no timestamp of its own.
func importTimestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}
