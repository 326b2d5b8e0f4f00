package domain

import "strings"

// YouTubeWatchPrefix is the only link shape accepted for embedded videos.
const YouTubeWatchPrefix = "www.youtube.com/watch?v="

// SanitizeVideoLink reduces a submitted video URL to its video identifier.
// Links without YouTubeWatchPrefix are dropped and nil is returned; this is
// not an error and never blocks a post from saving.
func SanitizeVideoLink(raw string) *string {
	if !strings.Contains(raw, YouTubeWatchPrefix) {
		return nil
	}

	// Keep whatever follows the last "v=", query parameters included.
	id := raw[strings.LastIndex(raw, "v=")+len("v="):]
	return &id
}

// ExpandVideoLink turns a stored video identifier back into a watchable
// link for the edit form. A nil identifier yields "".
func ExpandVideoLink(id *string) string {
	if id == nil {
		return ""
	}
	return YouTubeWatchPrefix + *id
}
