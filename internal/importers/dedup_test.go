package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"plain", "https://example.com/path", "https://example.com/path", true},
		{"strips query", "https://example.com/path?utm_source=x&b=2", "https://example.com/path", true},
		{"strips fragment", "https://example.com/path#section", "https://example.com/path", true},
		{"http scheme", "http://example.com/", "http://example.com/", true},
		{"javascript scheme", "javascript:void(0)", "", false},
		{"ftp scheme", "ftp://example.com/file", "", false},
		{"relative", "/just/a/path", "", false},
		{"garbage", "not a url", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BaseURL(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartition(t *testing.T) {
	parsed := []ParsedBookmark{
		{URL: "https://example.com/a?utm_source=newsletter"},
		{URL: "https://example.org/b"},
		{URL: "https://example.net/c"},
	}
	existing := []string{
		"https://example.com/a", // matches entry 0 despite the tracking params
		"https://example.org/b#frag",
	}

	fresh, skipped := Partition(parsed, existing)
	assert.Equal(t, 2, skipped)
	require.Len(t, fresh, 1)
	assert.Equal(t, "https://example.net/c", fresh[0].URL)
}

func TestPartitionIdempotent(t *testing.T) {
	parsed := ParsePocket(pocketFixture)
	require.NotEmpty(t, parsed)

	// First run against an empty store: everything is new.
	fresh, skipped := Partition(parsed, nil)
	assert.Len(t, fresh, len(parsed))
	assert.Zero(t, skipped)

	// Re-importing the same file after the store absorbed the first run
	// skips every entry.
	stored := make([]string, 0, len(fresh))
	for _, b := range fresh {
		stored = append(stored, b.URL)
	}
	fresh, skipped = Partition(parsed, stored)
	assert.Empty(t, fresh)
	assert.Equal(t, len(parsed), skipped)
}

func TestPartitionKeepsInFileDuplicates(t *testing.T) {
	parsed := []ParsedBookmark{
		{URL: "https://example.com/same"},
		{URL: "https://example.com/same"},
	}

	fresh, skipped := Partition(parsed, nil)
	// Intra-file duplicates survive partitioning; the creation step owns them.
	assert.Len(t, fresh, 2)
	assert.Zero(t, skipped)
}
