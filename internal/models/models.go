package models

// User represents a telegram user known to the bot. The two last-sent
// markers hold the day (YYYY-MM-DD) each daily reminder kind was last
// delivered; empty means never.
type User struct {
	UserID      int64  `db:"user_id"`
	ChatID      int64  `db:"chat_id"`
	LastEvening string `db:"last_evening_date"`
	LastCheckin string `db:"last_checkin_date"`
}

// Task is a single entry on a user's daily list. Day is the logical day
// the task was created for; tasks never move across days.
type Task struct {
	ID     int64  `db:"task_id"`
	UserID int64  `db:"user_id"`
	Day    string `db:"day"`
	Text   string `db:"text"`
	Done   bool   `db:"done"`
}

// DueUser is a delivery target produced by the reminder due-set query.
type DueUser struct {
	UserID int64 `db:"user_id"`
	ChatID int64 `db:"chat_id"`
}

// ReminderKind selects one of the two daily reminders.
type ReminderKind string

const (
	// KindEvening is the 6 PM task list reminder.
	KindEvening ReminderKind = "evening"
	// KindCheckin is the 11:50 PM interactive check-in.
	KindCheckin ReminderKind = "checkin"
)
