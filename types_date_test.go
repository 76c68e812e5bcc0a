package pocketplan

import (
	"testing"
	"time"
)

// TestTime asserts that Time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.Time() != d2.Time() {
		// time.Time values are usually not comparable (the timezone is a
		// pointer); this also checks that the property holds here.
		t.Errorf("invalid Time() function: same day gives two different times")
	}
	if d1 != d2 {
		t.Errorf("same day gives two different Date values")
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "plain day", in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{name: "time component discarded", in: "2024-01-15T08:30:00.000Z", want: NewDate(2024, time.January, 15)},
		{name: "surrounding spaces", in: " 2024-01-15 ", want: NewDate(2024, time.January, 15)},
		{name: "leap day", in: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{name: "empty", in: "", wantErr: true},
		{name: "month 13", in: "2024-13-01", wantErr: true},
		{name: "nonexistent day", in: "2023-02-29", wantErr: true},
		{name: "single digit month", in: "2024-1-15", wantErr: true},
		{name: "wrong order", in: "15-01-2024", wantErr: true},
		{name: "not a date", in: "soon", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestParseDate_RoundTrip checks that formatting then reparsing yields the
// same calendar day, independently of the host time zone.
func TestParseDate_RoundTrip(t *testing.T) {
	for _, str := range []string{"2024-01-01", "2024-02-29", "1999-12-31"} {
		d := MustParseDate(str)
		if d.String() != str {
			t.Errorf("String() = %q, want %q", d.String(), str)
		}
		back, err := ParseDate(d.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", d.String(), err)
		}
		if back != d {
			t.Errorf("round trip of %q gives %v", str, back)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	jan31 := NewDate(2025, time.January, 31)

	if got, want := jan31.Add(1), NewDate(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	// Feb 31 normalizes forward to Mar 3 in a non-leap year.
	if got, want := jan31.AddMonth(1), NewDate(2025, time.March, 3); got != want {
		t.Errorf("AddMonth(1) = %v, want %v", got, want)
	}
	// Feb 29 + 1 year normalizes to Mar 1.
	if got, want := NewDate(2024, time.February, 29).AddYear(1), NewDate(2025, time.March, 1); got != want {
		t.Errorf("AddYear(1) = %v, want %v", got, want)
	}
	if got, want := jan31.StartOfMonth(), NewDate(2025, time.January, 1); got != want {
		t.Errorf("StartOfMonth() = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.February, 10).EndOfMonth(), NewDate(2025, time.February, 28); got != want {
		t.Errorf("EndOfMonth() = %v, want %v", got, want)
	}
}

func TestDate_Weekday(t *testing.T) {
	if got, want := MustParseDate("2024-03-15").Weekday(), time.Friday; got != want {
		t.Errorf("Weekday() = %v, want %v", got, want)
	}
	if got, want := MustParseDate("2024-01-01").Weekday(), time.Monday; got != want {
		t.Errorf("Weekday() = %v, want %v", got, want)
	}
}

func TestDate_JSON(t *testing.T) {
	d := MustParseDate("2024-06-01")
	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(raw) != `"2024-06-01"` {
		t.Errorf("MarshalJSON() = %s", raw)
	}
	var back Date
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip gives %v, want %v", back, d)
	}
	if err := back.UnmarshalJSON([]byte(`"2024-31-31"`)); err == nil {
		t.Error("UnmarshalJSON accepted a nonexistent day")
	}
}
