package domain

import "time"

// StampLayout is the display format of post and comment timestamps
// (dd/MM/yy HH:mm).
const StampLayout = "02/01/06 15:04"

type Post struct {
	ID         string
	Title      string
	Body       string
	VideoID    *string // Canonical video identifier, never a raw URL
	ModuleCode string
	Author     string    // Handle snapshot at create or last edit
	PostedAt   time.Time // Creation or last edit time
	Version    int64     // Bumped on every edit, used to detect concurrent edits
}

// Stamp formats PostedAt for display.
func (p Post) Stamp() string { return FormatStamp(p.PostedAt) }

// PostDetail is a post together with every comment that references it, in
// the order they were added.
type PostDetail struct {
	Post     Post
	Comments []Comment
}

// PostFilter narrows a post listing. Zero values apply no restriction.
type PostFilter struct {
	Module string // Exact module code; "" or AllModules means any
	Search string // Case-sensitive substring of the title
}

// FormatStamp renders t in the local zone using StampLayout.
func FormatStamp(t time.Time) string {
	return t.Local().Format(StampLayout)
}

// ParseStamp parses a StampLayout string in the local zone.
func ParseStamp(s string) (time.Time, error) {
	return time.ParseInLocation(StampLayout, s, time.Local)
}
