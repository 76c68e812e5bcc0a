package pocketplan

import (
	"iter"
	"log"
)

// maxOccurrenceSteps bounds every occurrence walk. A healthy recurring item
// advances by at least 7 days per step, so 10,000 steps cover far more
// calendar than any projection can ask for.
const maxOccurrenceSteps = 10_000

// NextOccurrence returns the occurrence date one interval step after current.
//
// Month-based intervals use calendar normalization (see [Date.AddMonth]), so
// the result is always strictly after current.
func NextOccurrence(current Date, iv Interval) Date {
	switch iv {
	case Weekly:
		return current.Add(7)
	case Biweekly:
		return current.Add(14)
	case Monthly:
		return current.AddMonth(1)
	case Quarterly:
		return current.AddMonth(3)
	case Biannually:
		return current.AddMonth(6)
	case Yearly:
		return current.AddYear(1)
	default:
		// Intervals are validated at the decoding boundary; reaching this is
		// a programming error, not a data error.
		panic("unknown interval")
	}
}

// Occurrences returns the sequence of occurrence dates for an item anchored
// at anchor: anchor itself, then each subsequent interval step, in strictly
// increasing order.
//
// The sequence is restartable and lazy. It is capped at maxOccurrenceSteps,
// and aborted with a logged warning if a step ever fails to advance the
// date, so a pathological configuration can never loop forever.
func Occurrences(anchor Date, iv Interval) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		current := anchor
		for i := 0; i < maxOccurrenceSteps; i++ {
			if !yield(current) {
				return
			}
			next := NextOccurrence(current, iv)
			if !next.After(current) {
				log.Printf("warning: interval %s does not advance past %s, aborting occurrence sequence", iv, current)
				return
			}
			current = next
		}
		log.Printf("warning: occurrence sequence anchored at %s stopped after %d steps", anchor, maxOccurrenceSteps)
	}
}
