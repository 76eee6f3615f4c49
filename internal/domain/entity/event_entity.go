package entity

import (
	"time"
)

// Event is a scheduled happening owned by the user who created it.
// IsPublic controls read access by non-owners; mutation is owner-only.
type Event struct {
	ID           string
	Title        string
	Description  string
	Location     string
	StartTime    time.Time
	EndTime      time.Time
	IsPublic     bool
	Category     string
	MaxAttendees int // 0 = unlimited
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
