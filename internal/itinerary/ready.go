package itinerary

import "strings"

const (
	headerMarker    = "| 序号 |"
	separatorMarker = "|--"
)

// IsComplete reports whether text already holds a table header and its
// separator row. Streaming callers check it before parsing so a half
// written table is never parsed.
func IsComplete(text string) bool {
	return strings.Contains(text, headerMarker) && strings.Contains(text, separatorMarker)
}
