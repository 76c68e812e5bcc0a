package pocketplan

import (
	"testing"
	"time"
)

func TestNextOccurrence(t *testing.T) {
	testCases := []struct {
		name    string
		current Date
		iv      Interval
		want    Date
	}{
		{"weekly", NewDate(2024, time.January, 1), Weekly, NewDate(2024, time.January, 8)},
		{"biweekly", NewDate(2024, time.January, 1), Biweekly, NewDate(2024, time.January, 15)},
		{"monthly", NewDate(2024, time.January, 15), Monthly, NewDate(2024, time.February, 15)},
		{"monthly across year", NewDate(2024, time.December, 15), Monthly, NewDate(2025, time.January, 15)},
		// Jan 31 + 1 month normalizes past short February.
		{"monthly overflow leap", NewDate(2024, time.January, 31), Monthly, NewDate(2024, time.March, 2)},
		{"monthly overflow non leap", NewDate(2025, time.January, 31), Monthly, NewDate(2025, time.March, 3)},
		{"quarterly", NewDate(2024, time.February, 10), Quarterly, NewDate(2024, time.May, 10)},
		{"biannually", NewDate(2024, time.March, 5), Biannually, NewDate(2024, time.September, 5)},
		{"yearly", NewDate(2024, time.June, 1), Yearly, NewDate(2025, time.June, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextOccurrence(tc.current, tc.iv)
			if got != tc.want {
				t.Errorf("NextOccurrence(%v, %v) = %v, want %v", tc.current, tc.iv, got, tc.want)
			}
		})
	}
}

// TestNextOccurrence_Advances checks the postcondition next > current for
// every interval across a spread of anchor dates, including month ends.
func TestNextOccurrence_Advances(t *testing.T) {
	anchors := []Date{
		NewDate(2024, time.January, 1),
		NewDate(2024, time.January, 31),
		NewDate(2024, time.February, 29),
		NewDate(2024, time.December, 31),
		NewDate(2023, time.June, 15),
	}
	for _, iv := range Intervals() {
		for _, anchor := range anchors {
			if got := NextOccurrence(anchor, iv); !got.After(anchor) {
				t.Errorf("NextOccurrence(%v, %v) = %v does not advance", anchor, iv, got)
			}
		}
	}
}

func TestOccurrences(t *testing.T) {
	anchor := NewDate(2024, time.March, 4)

	// The k-th element equals the anchor plus k interval steps, and the
	// sequence is strictly increasing.
	want := anchor
	k := 0
	for d := range Occurrences(anchor, Weekly) {
		if d != want {
			t.Fatalf("element %d = %v, want %v", k, d, want)
		}
		want = want.Add(7)
		k++
		if k >= 100 {
			break
		}
	}
	if k != 100 {
		t.Fatalf("sequence stopped after %d elements", k)
	}

	// Restartable: a second pass yields the same prefix.
	for d := range Occurrences(anchor, Weekly) {
		if d != anchor {
			t.Errorf("restarted sequence begins at %v, want %v", d, anchor)
		}
		break
	}
}

func TestOccurrences_Capped(t *testing.T) {
	count := 0
	for range Occurrences(NewDate(2024, time.January, 1), Weekly) {
		count++
	}
	if count != maxOccurrenceSteps {
		t.Errorf("unbroken walk yielded %d occurrences, want cap %d", count, maxOccurrenceSteps)
	}
}
