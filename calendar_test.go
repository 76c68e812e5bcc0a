package pocketplan

import (
	"maps"
	"testing"
	"time"
)

func TestBuildMarkingIndex_WeeklyCount(t *testing.T) {
	window := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-12-31"))
	groceries := []RecurringItem{{
		ID: "g", Name: "Groceries", Amount: dec("80"),
		StartDate: MustParseDate("2024-03-15"), Interval: Weekly,
	}}

	index := BuildMarkingIndex(nil, groceries, nil, nil, window)

	// 291 days remain from 2024-03-15 to 2024-12-31: floor(291/7)+1 dates.
	if got, want := len(index), 42; got != want {
		t.Fatalf("marked %d dates, want %d", got, want)
	}
	for d, set := range index {
		if !set.Has(CategoryRecurringExpense) {
			t.Errorf("%v misses the recurring-expense category", d)
		}
		if set != CategorySet(CategoryRecurringExpense) {
			t.Errorf("%v carries extra categories: %v", d, set)
		}
		if d.Weekday() != MustParseDate("2024-03-15").Weekday() {
			t.Errorf("%v is not on the anchor weekday", d)
		}
	}
}

func TestBuildMarkingIndex_Categories(t *testing.T) {
	window := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-06-30"))
	salary := []RecurringItem{{
		ID: "s", Name: "Salary", Amount: dec("2000"),
		StartDate: MustParseDate("2024-01-25"), Interval: Monthly,
	}}
	rent := []RecurringItem{{
		ID: "r", Name: "Rent", Amount: dec("900"),
		StartDate: MustParseDate("2024-01-25"), Interval: Monthly,
	}}
	bonus := []OneTimeItem{{ID: "b", Name: "Bonus", Amount: dec("100"), Date: MustParseDate("2024-01-25")}}
	outOfRange := []OneTimeItem{{ID: "o", Name: "Late", Amount: dec("10"), Date: MustParseDate("2024-07-01")}}

	index := BuildMarkingIndex(salary, rent, bonus, outOfRange, window)

	jan25 := index[MustParseDate("2024-01-25")]
	for _, c := range []Category{CategoryRecurringIncome, CategoryRecurringExpense, CategoryOneTimeIncome} {
		if !jan25.Has(c) {
			t.Errorf("2024-01-25 misses %v, set = %v", c, jan25)
		}
	}
	if jan25.Has(CategoryOneTimeExpense) {
		t.Errorf("2024-01-25 carries a one-time expense mark")
	}
	if _, ok := index[MustParseDate("2024-07-01")]; ok {
		t.Error("index contains a date past the range end")
	}
	// Six monthly occurrences of each recurring item, all coinciding.
	if got, want := len(index), 6; got != want {
		t.Errorf("marked %d dates, want %d", got, want)
	}
}

// Building the index twice over the same inputs yields equal results: the
// builder is pure and idempotent.
func TestBuildMarkingIndex_Idempotent(t *testing.T) {
	window := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-12-31"))
	bills := []RecurringItem{{
		ID: "b", Name: "Internet", Amount: dec("45"),
		StartDate: MustParseDate("2024-02-01"), Interval: Monthly,
	}}

	first := BuildMarkingIndex(nil, bills, nil, nil, window)
	second := BuildMarkingIndex(nil, bills, nil, nil, window)
	if !maps.Equal(first, second) {
		t.Error("two identical builds disagree")
	}
}

func TestMarkingIndex_Dates(t *testing.T) {
	window := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-03-31"))
	bills := []RecurringItem{{
		ID: "b", Name: "Rent", Amount: dec("900"),
		StartDate: MustParseDate("2024-01-10"), Interval: Monthly,
	}}
	index := BuildMarkingIndex(nil, bills, nil, nil, window)

	dates := index.Dates()
	want := []Date{
		NewDate(2024, time.January, 10),
		NewDate(2024, time.February, 10),
		NewDate(2024, time.March, 10),
	}
	if len(dates) != len(want) {
		t.Fatalf("Dates() = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("Dates()[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}
