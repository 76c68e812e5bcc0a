package pocketplan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Interval is the closed set of recurrence frequencies an item can have.
type Interval int

const (
	Weekly Interval = iota
	Biweekly
	Monthly
	Quarterly
	Biannually
	Yearly
)

func (iv Interval) String() string {
	switch iv {
	case Weekly:
		return "weekly"
	case Biweekly:
		return "biweekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Biannually:
		return "biannually"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown interval %d", iv))
	}
}

// ParseInterval parses a string into an Interval. Unknown values are an
// error: items carrying them are rejected at the decoding boundary instead
// of silently falling back to monthly.
func ParseInterval(s string) (Interval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week":
		return Weekly, nil
	case "biweekly":
		return Biweekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "biannually", "biannual":
		return Biannually, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Weekly, fmt.Errorf("unknown interval %q", s)
	}
}

// Intervals returns all valid intervals in declaration order.
func Intervals() []Interval {
	return []Interval{Weekly, Biweekly, Monthly, Quarterly, Biannually, Yearly}
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.String())
}

func (iv *Interval) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseInterval(str)
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}

var _ json.Marshaler = (*Interval)(nil)
var _ json.Unmarshaler = (*Interval)(nil)
