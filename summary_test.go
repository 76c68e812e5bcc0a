package pocketplan

import "testing"

func TestNewMonthSummary(t *testing.T) {
	salary := []RecurringItem{{
		ID: "s", Name: "Salary", Amount: dec("2000"),
		StartDate: MustParseDate("2024-01-25"), Interval: Monthly,
	}}
	bills := []RecurringItem{
		{ID: "r", Name: "Rent", Amount: dec("900"), StartDate: MustParseDate("2024-01-01"), Interval: Monthly},
		// Weekly from Mar 1: occurrences Mar 1, 8, 15, 22, 29 in March.
		{ID: "g", Name: "Groceries", Amount: dec("50"), StartDate: MustParseDate("2024-03-01"), Interval: Weekly},
		// Yearly in June never lands in March.
		{ID: "i", Name: "Insurance", Amount: dec("300"), StartDate: MustParseDate("2023-06-10"), Interval: Yearly},
	}
	spends := []OneTimeItem{
		{ID: "c", Name: "Concert", Amount: dec("60"), Date: MustParseDate("2024-03-09")},
		{ID: "x", Name: "Out of month", Amount: dec("999"), Date: MustParseDate("2024-04-02")},
	}

	s := NewMonthSummary(salary, bills, nil, spends, MustParseDate("2024-03-17"))

	if s.Month != MustParseDate("2024-03-01") {
		t.Errorf("Month = %v", s.Month)
	}
	if !s.Income.Equal(dec("2000")) {
		t.Errorf("Income = %s, want 2000", s.Income)
	}
	// 900 rent + 5*50 groceries + 60 concert.
	if !s.Expenses.Equal(dec("1210")) {
		t.Errorf("Expenses = %s, want 1210", s.Expenses)
	}
	if !s.Net.Equal(dec("790")) {
		t.Errorf("Net = %s, want 790", s.Net)
	}

	wantBreakdown := []BreakdownEntry{
		{Name: "Rent", Amount: dec("900")},
		{Name: "Groceries", Amount: dec("250")},
		{Name: "Concert", Amount: dec("60")},
	}
	if len(s.Breakdown) != len(wantBreakdown) {
		t.Fatalf("Breakdown = %v", s.Breakdown)
	}
	for i, want := range wantBreakdown {
		got := s.Breakdown[i]
		if got.Name != want.Name || !got.Amount.Equal(want.Amount) {
			t.Errorf("Breakdown[%d] = %s %s, want %s %s", i, got.Name, got.Amount, want.Name, want.Amount)
		}
	}
}

func TestNewMonthSummary_EmptyMonth(t *testing.T) {
	bills := []RecurringItem{{
		ID: "r", Name: "Rent", Amount: dec("900"),
		StartDate: MustParseDate("2024-06-01"), Interval: Monthly,
	}}
	s := NewMonthSummary(nil, bills, nil, nil, MustParseDate("2024-03-17"))
	if !s.Income.IsZero() || !s.Expenses.IsZero() || !s.Net.IsZero() {
		t.Errorf("month before the item's start is not empty: %+v", s)
	}
	if len(s.Breakdown) != 0 {
		t.Errorf("Breakdown = %v, want empty", s.Breakdown)
	}
}
