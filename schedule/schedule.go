// Package schedule plans and runs bill reminders: one reminder per
// recurring bill, a configurable number of days before its next occurrence.
package schedule

import (
	"log"
	"time"

	"github.com/ssekandi/pocketplan"
)

// Reminders fire at a fixed UTC time of day.
const (
	reminderHour   = 9
	reminderMinute = 0
)

// Reminder is one planned bill reminder.
type Reminder struct {
	ItemID string
	Name   string
	Due    pocketplan.Date // the occurrence being reminded about
	At     time.Time       // the instant the reminder fires
}

// Plan computes the reminders for a set of recurring bills.
//
// For each bill the next occurrence strictly after now is located, and the
// reminder instant is daysBefore days earlier at 09:00 UTC. A bill whose
// reminder instant is already past is skipped rather than fired late; it
// will be planned again once its occurrence has gone by.
func Plan(bills []pocketplan.RecurringItem, daysBefore int, now time.Time) []Reminder {
	var reminders []Reminder
	today := pocketplan.NewDate(now.UTC().Date())

	for _, bill := range bills {
		if bill.StartDate.IsZero() {
			log.Printf("warning: bill %q has no usable start date, skipping reminder", bill.Name)
			continue
		}
		due, ok := nextAfter(bill, today)
		if !ok {
			continue
		}
		at := due.Add(-daysBefore).Time().Add(reminderHour*time.Hour + reminderMinute*time.Minute)
		if !at.After(now) {
			log.Printf("reminder for %q at %s is already past, skipping this occurrence", bill.Name, at.Format(time.RFC3339))
			continue
		}
		reminders = append(reminders, Reminder{ItemID: bill.ID, Name: bill.Name, Due: due, At: at})
	}
	return reminders
}

// nextAfter returns the bill's first occurrence strictly after the given day.
func nextAfter(bill pocketplan.RecurringItem, day pocketplan.Date) (pocketplan.Date, bool) {
	for d := range bill.Occurrences() {
		if d.After(day) {
			return d, true
		}
	}
	return pocketplan.Date{}, false
}
