package domain

import "time"

type Comment struct {
	ID       string
	PostID   string // Owning post, fixed at creation
	Content  string
	Author   string
	PostedAt time.Time
}

// Stamp formats PostedAt for display.
func (c Comment) Stamp() string { return FormatStamp(c.PostedAt) }
