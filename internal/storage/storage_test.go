package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prottasha5/remindme-bot/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddTaskRejectsEmptyText(t *testing.T) {
	db := newTestDB(t)

	assert.ErrorIs(t, db.AddTask(1, "2025-01-10", "   "), ErrEmptyTask)
	assert.ErrorIs(t, db.AddTask(1, "2025-01-10", ""), ErrEmptyTask)

	tasks, err := db.ListTasks(1, "2025-01-10")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestAddTaskTrimsText(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.AddTask(1, "2025-01-10", "  Gym  "))

	tasks, err := db.ListTasks(1, "2025-01-10")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Gym", tasks[0].Text)
	assert.False(t, tasks[0].Done)
}

func TestListTasksCreationOrder(t *testing.T) {
	db := newTestDB(t)

	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, db.AddTask(1, "2025-01-10", text))
	}

	tasks, err := db.ListTasks(1, "2025-01-10")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Text)
	assert.Equal(t, "second", tasks[1].Text)
	assert.Equal(t, "third", tasks[2].Text)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
	assert.Less(t, tasks[1].ID, tasks[2].ID)
}

func TestListTasksDayScoping(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.AddTask(1, "2025-01-10", "Gym"))

	tasks, err := db.ListTasks(1, "2025-01-11")
	require.NoError(t, err)
	assert.Empty(t, tasks, "task must not leak into another day")

	tasks, err = db.ListTasks(1, "2025-01-10")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestToggleTaskPairRestoresState(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.AddTask(1, "2025-01-10", "Gym"))
	tasks, err := db.ListTasks(1, "2025-01-10")
	require.NoError(t, err)
	id := tasks[0].ID

	require.NoError(t, db.ToggleTask(id))
	tasks, _ = db.ListTasks(1, "2025-01-10")
	assert.True(t, tasks[0].Done)

	require.NoError(t, db.ToggleTask(id))
	tasks, _ = db.ListTasks(1, "2025-01-10")
	assert.False(t, tasks[0].Done)
}

func TestToggleTaskNotFound(t *testing.T) {
	db := newTestDB(t)

	assert.ErrorIs(t, db.ToggleTask(12345), ErrTaskNotFound)
}

func TestBelongsToUserOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.AddTask(1, "2025-01-10", "Gym"))
	tasks, err := db.ListTasks(1, "2025-01-10")
	require.NoError(t, err)
	id := tasks[0].ID

	ok, err := db.BelongsToUser(1, id, "2025-01-10")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.BelongsToUser(2, id, "2025-01-10")
	require.NoError(t, err)
	assert.False(t, ok, "another user must not see the task")

	ok, err = db.BelongsToUser(1, id, "2025-01-11")
	require.NoError(t, err)
	assert.False(t, ok, "the task must not be operable on another day")

	ok, err = db.BelongsToUser(1, 9999, "2025-01-10")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteAllForDayResetsCompletely(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.AddTask(1, "2025-01-10", "Gym"))
	require.NoError(t, db.AddTask(1, "2025-01-10", "Study"))
	require.NoError(t, db.AddTask(1, "2025-01-11", "Tomorrow"))
	require.NoError(t, db.SetNote(1, "2025-01-10", "tired"))

	n, err := db.DeleteAllForDay(1, "2025-01-10")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.NoError(t, db.DeleteNote(1, "2025-01-10"))

	tasks, err := db.ListTasks(1, "2025-01-10")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	note, err := db.GetNote(1, "2025-01-10")
	require.NoError(t, err)
	assert.Empty(t, note)

	// the other day is untouched
	tasks, err = db.ListTasks(1, "2025-01-11")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestDeleteAllForDayEmptyIsNotAnError(t *testing.T) {
	db := newTestDB(t)

	n, err := db.DeleteAllForDay(1, "2025-01-10")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNoteUpsertAndAbsence(t *testing.T) {
	db := newTestDB(t)

	note, err := db.GetNote(1, "2025-01-10")
	require.NoError(t, err)
	assert.Empty(t, note, "missing note reads as absent, not as an error")

	require.NoError(t, db.SetNote(1, "2025-01-10", "first"))
	require.NoError(t, db.SetNote(1, "2025-01-10", "second"))

	note, err = db.GetNote(1, "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, "second", note, "second write replaces the first")
}

func TestUpsertUserUpdatesChat(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.UpsertUser(1, 100))
	require.NoError(t, db.UpsertUser(1, 200))

	u, err := db.GetUser(1)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.EqualValues(t, 200, u.ChatID)

	missing, err := db.GetUser(42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDueUsersAndMarkSent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.UpsertUser(1, 100))
	require.NoError(t, db.UpsertUser(2, 200))

	due, err := db.DueUsers(models.KindEvening, "2025-01-10")
	require.NoError(t, err)
	assert.Len(t, due, 2, "fresh users are due")

	require.NoError(t, db.MarkSent(1, models.KindEvening, "2025-01-10"))

	due, err = db.DueUsers(models.KindEvening, "2025-01-10")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.EqualValues(t, 2, due[0].UserID)

	// the other kind is tracked independently
	due, err = db.DueUsers(models.KindCheckin, "2025-01-10")
	require.NoError(t, err)
	assert.Len(t, due, 2)

	// a new day makes everyone due again
	due, err = db.DueUsers(models.KindEvening, "2025-01-11")
	require.NoError(t, err)
	assert.Len(t, due, 2)
}

func TestDueUsersUnknownKind(t *testing.T) {
	db := newTestDB(t)

	_, err := db.DueUsers(models.ReminderKind("bogus"), "2025-01-10")
	assert.Error(t, err)
}
