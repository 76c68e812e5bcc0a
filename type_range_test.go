package pocketplan

import (
	"testing"
	"time"
)

func TestNewRange_Swaps(t *testing.T) {
	from := MustParseDate("2024-03-10")
	to := MustParseDate("2024-03-01")
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange(%v, %v) = %v, want ordered bounds", from, to, r)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParseDate("2024-03-01"), MustParseDate("2024-03-31"))

	testCases := []struct {
		name string
		d    Date
		want bool
	}{
		{"inside", MustParseDate("2024-03-15"), true},
		{"first day", MustParseDate("2024-03-01"), true},
		{"last day", MustParseDate("2024-03-31"), true},
		{"day before", MustParseDate("2024-02-29"), false},
		{"day after", MustParseDate("2024-04-01"), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.d); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := NewRange(MustParseDate("2024-02-27"), MustParseDate("2024-03-02"))

	var days []Date
	for d := range r.Days() {
		days = append(days, d)
	}
	want := []Date{
		NewDate(2024, time.February, 27),
		NewDate(2024, time.February, 28),
		NewDate(2024, time.February, 29),
		NewDate(2024, time.March, 1),
		NewDate(2024, time.March, 2),
	}
	if len(days) != len(want) {
		t.Fatalf("Days() yielded %d dates, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("Days()[%d] = %v, want %v", i, days[i], want[i])
		}
	}

	// A consumer may stop early without draining the sequence.
	count := 0
	for range r.Days() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("early stop consumed %d dates, want 2", count)
	}
}
