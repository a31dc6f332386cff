// Package policy holds the authorization rules for owned records.
//
// Rules are pure functions of (actor, record) so they can be checked
// anywhere without a database round trip.
package policy

import "github.com/templui/profiles/internal/model"

// Owned is any record that belongs to exactly one user.
type Owned interface {
	OwnerID() string
}

// IsOwner reports whether actor owns the record. A nil actor owns nothing.
func IsOwner(actor *model.User, record Owned) bool {
	if actor == nil || record == nil {
		return false
	}
	return actor.ID != "" && actor.ID == record.OwnerID()
}

// IsAdmin reports whether actor holds administrator privilege.
func IsAdmin(actor *model.User) bool {
	return actor != nil && actor.IsAdmin
}

// IsAdminOrOwner is the read rule: admins see everything, users see their own.
func IsAdminOrOwner(actor *model.User, record Owned) bool {
	return IsAdmin(actor) || IsOwner(actor, record)
}
