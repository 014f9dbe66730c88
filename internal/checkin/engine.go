// Package checkin implements the end-of-day check-in protocol: toggling
// tasks on today's list, the done/total summary, and the finalize step
// with its feedback tier. All state lives in the store; every operation
// here is a plain request/response over the persisted rows, which is what
// makes Summary and Finalize safely repeatable.
package checkin

import (
	"errors"

	"github.com/prottasha5/remindme-bot/internal/clock"
	"github.com/prottasha5/remindme-bot/internal/models"
)

// ErrNotAllowed is returned when the target task is not on the calling
// user's list for today. Tasks that do not exist at all get the same
// answer, so one user cannot probe for another's task ids.
var ErrNotAllowed = errors.New("task is not in today's list")

// Store is the slice of the persistence layer the engine needs.
type Store interface {
	ListTasks(userID int64, day string) ([]models.Task, error)
	ToggleTask(taskID int64) error
	BelongsToUser(userID, taskID int64, day string) (bool, error)
	GetNote(userID int64, day string) (string, error)
}

// Snapshot is the state of one user's list for a day.
type Snapshot struct {
	Day   string
	Tasks []models.Task
	Done  int
	Total int
}

// Outcome is the result of finalizing a day.
type Outcome struct {
	Snapshot
	Tier Tier
	Note string
}

type Engine struct {
	store Store
	clock clock.Clock
}

func New(store Store, clk clock.Clock) *Engine {
	return &Engine{store: store, clock: clk}
}

func (e *Engine) snapshot(userID int64, day string) (*Snapshot, error) {
	tasks, err := e.store.ListTasks(userID, day)
	if err != nil {
		return nil, err
	}
	s := &Snapshot{Day: day, Tasks: tasks, Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			s.Done++
		}
	}
	return s, nil
}

// Toggle flips one task on today's list and returns the refreshed
// snapshot for redisplay. The ownership check runs first; a failed check
// mutates nothing.
func (e *Engine) Toggle(userID, taskID int64) (*Snapshot, error) {
	day := e.clock.Today()

	ok, err := e.store.BelongsToUser(userID, taskID, day)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}
	if err := e.store.ToggleTask(taskID); err != nil {
		return nil, err
	}
	return e.snapshot(userID, day)
}

// Summary reports done/total for today without touching anything.
func (e *Engine) Summary(userID int64) (*Snapshot, error) {
	return e.snapshot(userID, e.clock.Today())
}

// Finalize computes today's result: the snapshot, its feedback tier and
// the saved note if any. It neither deletes nor locks the list, so it can
// be pressed as many times as the user likes.
func (e *Engine) Finalize(userID int64) (*Outcome, error) {
	day := e.clock.Today()

	snap, err := e.snapshot(userID, day)
	if err != nil {
		return nil, err
	}
	note, err := e.store.GetNote(userID, day)
	if err != nil {
		return nil, err
	}
	return &Outcome{Snapshot: *snap, Tier: TierFor(snap.Done, snap.Total), Note: note}, nil
}
