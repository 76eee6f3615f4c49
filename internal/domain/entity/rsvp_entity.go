package entity

import (
	"time"
)

// RSVP statuses accepted by the API.
const (
	RSVPGoing    = "going"
	RSVPMaybe    = "maybe"
	RSVPNotGoing = "not_going"
)

// RSVP records a user's attendance intent for an event.
// A user holds at most one RSVP per event (enforced by the store's unique
// index on user_id+event_id and pre-checked by the service).
type RSVP struct {
	ID        string
	UserID    string
	EventID   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRSVPStatus reports whether s is one of the accepted statuses.
func ValidRSVPStatus(s string) bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}
