package pocketplan

import "testing"

func TestParseInterval(t *testing.T) {
	for _, iv := range Intervals() {
		got, err := ParseInterval(iv.String())
		if err != nil {
			t.Fatalf("ParseInterval(%q) error = %v", iv, err)
		}
		if got != iv {
			t.Errorf("ParseInterval(%q) = %v, want %v", iv.String(), got, iv)
		}
	}
	if got, err := ParseInterval("Monthly"); err != nil || got != Monthly {
		t.Errorf("ParseInterval is not case-insensitive: %v, %v", got, err)
	}
	for _, bad := range []string{"", "daily", "fortnightly", "monthlyy"} {
		if _, err := ParseInterval(bad); err == nil {
			t.Errorf("ParseInterval(%q) accepted an unknown interval", bad)
		}
	}
}

func TestInterval_JSON(t *testing.T) {
	raw, err := Quarterly.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(raw) != `"quarterly"` {
		t.Errorf("MarshalJSON() = %s", raw)
	}
	var iv Interval
	if err := iv.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if iv != Quarterly {
		t.Errorf("round trip gives %v", iv)
	}
	// The legacy store silently defaulted unknown intervals to monthly;
	// here they must be rejected at the boundary.
	if err := iv.UnmarshalJSON([]byte(`"sometimes"`)); err == nil {
		t.Error("UnmarshalJSON accepted an unknown interval")
	}
}
