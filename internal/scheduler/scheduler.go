// Package scheduler fires the two daily reminders and walks the due set
// for each, dispatching through an injected Notifier.
package scheduler

import (
	"log"

	"github.com/go-co-op/gocron/v2"

	"github.com/prottasha5/remindme-bot/internal/clock"
	"github.com/prottasha5/remindme-bot/internal/config"
	"github.com/prottasha5/remindme-bot/internal/models"
	"github.com/prottasha5/remindme-bot/internal/reminder"
)

// Notifier delivers one reminder of the given kind to one user. A nil
// return confirms delivery; anything else leaves the user due.
type Notifier interface {
	Notify(kind models.ReminderKind, to models.DueUser, day string) error
}

// Result records one per-user dispatch attempt within a firing.
type Result struct {
	User models.DueUser
	Err  error
}

// Dispatch sends the reminder of kind to every due user for day. The
// marker is updated only after a confirmed send, and one user's failure
// never stops the rest of the batch; failures come back in the results
// and the user stays due for the next firing.
func Dispatch(t *reminder.Tracker, n Notifier, kind models.ReminderKind, day string) ([]Result, error) {
	due, err := t.Due(kind, day)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(due))
	for _, u := range due {
		err := n.Notify(kind, u, day)
		if err == nil {
			err = t.MarkSent(u.UserID, kind, day)
		}
		results = append(results, Result{User: u, Err: err})
	}
	return results, nil
}

// Start registers the two daily jobs in the clock's location and starts
// the scheduler. The caller owns shutdown.
func Start(cfg config.Config, clk clock.Real, t *reminder.Tracker, n Notifier) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(clk.Loc))
	if err != nil {
		return nil, err
	}

	jobs := []struct {
		kind models.ReminderKind
		at   string
	}{
		{models.KindEvening, cfg.EveningAt},
		{models.KindCheckin, cfg.CheckinAt},
	}
	for _, j := range jobs {
		hour, minute, err := config.ParseHM(j.at)
		if err != nil {
			return nil, err
		}

		kind := j.kind
		_, err = s.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(
				gocron.NewAtTime(uint(hour), uint(minute), 0),
			)),
			gocron.NewTask(func() {
				runKind(clk, t, n, kind)
			}),
		)
		if err != nil {
			return nil, err
		}
	}

	s.Start()
	return s, nil
}

func runKind(clk clock.Clock, t *reminder.Tracker, n Notifier, kind models.ReminderKind) {
	day := clk.Today()
	results, err := Dispatch(t, n, kind, day)
	if err != nil {
		log.Printf("scheduler: %s due-set for %s: %v", kind, day, err)
		return
	}
	for _, r := range results {
		if r.Err != nil {
			log.Printf("scheduler: %s reminder to user %d failed: %v", kind, r.User.UserID, r.Err)
		}
	}
}
