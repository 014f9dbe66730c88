// Package storage is the persistence layer: users with their reminder
// markers, per-day tasks, and per-day notes in a single sqlite database.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/prottasha5/remindme-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

var (
	// ErrEmptyTask means the task text trimmed to nothing.
	ErrEmptyTask = errors.New("task text is empty")
	// ErrTaskNotFound means no task row matched the given id.
	ErrTaskNotFound = errors.New("task not found")
)

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- users -----------------------------------------------------------

// UpsertUser registers a user on first contact and keeps chat_id fresh on
// every later one. The last-sent markers are never touched here.
func (d *DB) UpsertUser(userID, chatID int64) error {
	_, err := d.Exec(`
        INSERT INTO users (user_id, chat_id) VALUES (?,?)
        ON CONFLICT(user_id) DO UPDATE SET chat_id=excluded.chat_id
    `, userID, chatID)
	return err
}

func (d *DB) GetUser(userID int64) (*models.User, error) {
	var u models.User
	var evening, checkin sql.NullString

	err := d.QueryRow(`
        SELECT user_id, chat_id, last_evening_date, last_checkin_date
        FROM users WHERE user_id=?`, userID,
	).Scan(&u.UserID, &u.ChatID, &evening, &checkin)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.LastEvening = evening.String
	u.LastCheckin = checkin.String
	return &u, nil
}

// ---------- reminder markers ------------------------------------------------

func markerColumn(kind models.ReminderKind) (string, error) {
	switch kind {
	case models.KindEvening:
		return "last_evening_date", nil
	case models.KindCheckin:
		return "last_checkin_date", nil
	}
	return "", fmt.Errorf("unknown reminder kind %q", kind)
}

// DueUsers returns every user whose marker for kind is unset or points at
// a different day.
func (d *DB) DueUsers(kind models.ReminderKind, day string) ([]models.DueUser, error) {
	col, err := markerColumn(kind)
	if err != nil {
		return nil, err
	}

	rows, err := d.Query(fmt.Sprintf(`
        SELECT user_id, chat_id FROM users
        WHERE %s IS NULL OR %s <> ?`, col, col), day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.DueUser
	for rows.Next() {
		var u models.DueUser
		if err := rows.Scan(&u.UserID, &u.ChatID); err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

// MarkSent records that the reminder of the given kind went out for day.
// A single UPDATE, so concurrent callers on the same row serialize in
// sqlite rather than racing a read-modify-write.
func (d *DB) MarkSent(userID int64, kind models.ReminderKind, day string) error {
	col, err := markerColumn(kind)
	if err != nil {
		return err
	}
	_, err = d.Exec(fmt.Sprintf(`UPDATE users SET %s=? WHERE user_id=?`, col), day, userID)
	return err
}

// ---------- tasks -----------------------------------------------------------

func (d *DB) AddTask(userID int64, day, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyTask
	}
	_, err := d.Exec(`INSERT INTO tasks (user_id, day, text) VALUES (?,?,?)`, userID, day, text)
	return err
}

// ListTasks returns the user's tasks for day in creation order.
func (d *DB) ListTasks(userID int64, day string) ([]models.Task, error) {
	rows, err := d.Query(`
        SELECT task_id, user_id, day, text, done
        FROM tasks WHERE user_id=? AND day=?
        ORDER BY task_id ASC`, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Day, &t.Text, &t.Done); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// ToggleTask flips done in one statement; two rapid taps on the same task
// cannot both observe the old value.
func (d *DB) ToggleTask(taskID int64) error {
	res, err := d.Exec(`
        UPDATE tasks SET done = CASE done WHEN 1 THEN 0 ELSE 1 END
        WHERE task_id=?`, taskID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// BelongsToUser reports whether the task exists, is owned by the user and
// sits on the given day. Mutations that take a caller-supplied id must
// check this first.
func (d *DB) BelongsToUser(userID, taskID int64, day string) (bool, error) {
	var one int
	err := d.QueryRow(`
        SELECT 1 FROM tasks WHERE user_id=? AND day=? AND task_id=? LIMIT 1`,
		userID, day, taskID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *DB) DeleteTask(taskID int64) error {
	_, err := d.Exec(`DELETE FROM tasks WHERE task_id=?`, taskID)
	return err
}

// DeleteAllForDay removes every task of the user for day and returns how
// many were deleted. Zero is a valid result.
func (d *DB) DeleteAllForDay(userID int64, day string) (int64, error) {
	res, err := d.Exec(`DELETE FROM tasks WHERE user_id=? AND day=?`, userID, day)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ---------- notes -----------------------------------------------------------

func (d *DB) SetNote(userID int64, day, note string) error {
	_, err := d.Exec(`
        INSERT INTO notes (user_id, day, note) VALUES (?,?,?)
        ON CONFLICT(user_id, day) DO UPDATE SET note=excluded.note
    `, userID, day, note)
	return err
}

// GetNote returns the saved note for (user, day), or "" when none exists.
func (d *DB) GetNote(userID int64, day string) (string, error) {
	var note string
	err := d.QueryRow(`SELECT note FROM notes WHERE user_id=? AND day=?`, userID, day).Scan(&note)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return note, err
}

func (d *DB) DeleteNote(userID int64, day string) error {
	_, err := d.Exec(`DELETE FROM notes WHERE user_id=? AND day=?`, userID, day)
	return err
}
