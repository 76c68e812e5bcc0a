package schedule

import (
	"context"
	"time"

	"github.com/reugn/go-quartz/job"
	"github.com/reugn/go-quartz/quartz"
)

// NotifyFunc delivers a reminder to the user.
type NotifyFunc func(Reminder)

// Scheduler runs planned reminders on a quartz scheduler. Jobs are keyed by
// item id, so rescheduling a bill replaces its previous reminder and
// Cancel removes it.
type Scheduler struct {
	sched  quartz.Scheduler
	notify NotifyFunc
}

// NewScheduler creates a stopped scheduler delivering through notify.
func NewScheduler(notify NotifyFunc) *Scheduler {
	return &Scheduler{sched: quartz.NewStdScheduler(), notify: notify}
}

// Start starts the scheduler loop; it stops when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) { s.sched.Start(ctx) }

// Stop stops the scheduler loop.
func (s *Scheduler) Stop() { s.sched.Stop() }

// Wait blocks until the scheduler has stopped and running jobs finished.
func (s *Scheduler) Wait(ctx context.Context) { s.sched.Wait(ctx) }

// Schedule registers a run-once job for the reminder, replacing any job
// previously registered for the same item.
func (s *Scheduler) Schedule(r Reminder) error {
	key := quartz.NewJobKey(r.ItemID)
	// DeleteJob on an unknown key only reports not-found; replacement is
	// what matters here.
	_ = s.sched.DeleteJob(key)

	fire := job.NewFunctionJob(func(context.Context) (bool, error) {
		s.notify(r)
		return true, nil
	})
	detail := quartz.NewJobDetail(fire, key)
	return s.sched.ScheduleJob(detail, quartz.NewRunOnceTrigger(time.Until(r.At)))
}

// Cancel removes the reminder job for the given item id, if any.
func (s *Scheduler) Cancel(itemID string) error {
	return s.sched.DeleteJob(quartz.NewJobKey(itemID))
}
