// Package authz holds the access-control predicates for events, RSVPs and
// user profiles. Every function is pure and total: it decides from the
// resolved user and the record fields alone, with no I/O.
package authz

import (
	"github.com/oksasatya/event-planner-api/internal/domain/entity"
)

// CanViewEvent reports whether u may read e: public events are visible to
// everyone, private events only to their creator.
func CanViewEvent(u *entity.User, e *entity.Event) bool {
	if e.IsPublic {
		return true
	}
	return u != nil && u.ID == e.CreatedBy
}

// CanMutateEvent reports whether u may update or delete e. Only the creator may.
func CanMutateEvent(u *entity.User, e *entity.Event) bool {
	return u != nil && u.ID == e.CreatedBy
}

// CanViewEventRSVPs reports whether u may list the RSVPs of e.
// RSVP-list visibility follows event visibility.
func CanViewEventRSVPs(u *entity.User, e *entity.Event) bool {
	return CanViewEvent(u, e)
}

// CanMutateRSVP reports whether u may change r. Only the RSVP's holder may.
func CanMutateRSVP(u *entity.User, r *entity.RSVP) bool {
	return u != nil && u.ID == r.UserID
}

// CanViewUser reports whether u may read the profile with the given user id.
// Profiles are private: users can only read their own.
func CanViewUser(u *entity.User, userID string) bool {
	return u != nil && u.ID == userID
}
