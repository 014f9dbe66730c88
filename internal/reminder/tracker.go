// Package reminder tracks which daily reminders each user has already
// received, keyed by logical day.
package reminder

import "github.com/prottasha5/remindme-bot/internal/models"

// Store persists the per-user last-sent markers.
type Store interface {
	DueUsers(kind models.ReminderKind, day string) ([]models.DueUser, error)
	MarkSent(userID int64, kind models.ReminderKind, day string) error
}

type Tracker struct {
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Due returns the users still owed the reminder of kind for day: everyone
// whose marker is unset or set to a different day.
func (t *Tracker) Due(kind models.ReminderKind, day string) ([]models.DueUser, error) {
	return t.store.DueUsers(kind, day)
}

// MarkSent records a confirmed delivery. Call it only after the send
// succeeded; a failed send must leave the user due for the next firing.
func (t *Tracker) MarkSent(userID int64, kind models.ReminderKind, day string) error {
	return t.store.MarkSent(userID, kind, day)
}
