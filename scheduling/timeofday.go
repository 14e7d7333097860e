package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time expressed as minutes from midnight
// (e.g., 420 for 7:00 AM). All scheduling math happens on this type;
// display strings exist only at the edges.
type TimeOfDay int

// MinutesPerDay bounds a valid TimeOfDay to [0, 1439].
const MinutesPerDay = 24 * 60

// ParseTime parses a clock string into a TimeOfDay. It accepts the
// 24-hour form "HH:MM" and the 12-hour forms "H:MM AM"/"HH:MM PM"
// (case-insensitive, 12 AM maps to hour 0). The second return value
// reports whether the input was parseable.
func ParseTime(s string) (TimeOfDay, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	upper := strings.ToUpper(s)
	meridiem := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		upper = strings.TrimSpace(upper[:len(upper)-2])
	}

	parts := strings.Split(upper, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if minute < 0 || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, false
		}
	}

	return TimeOfDay(hour*60 + minute), true
}

// ParseTimeOr parses s, falling back to def when s is not a valid
// clock string. Malformed input is a recoverable anomaly for callers
// holding legacy records, not a failure.
func ParseTimeOr(s string, def TimeOfDay) TimeOfDay {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// Format24 renders the time as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) Format24() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Format12 renders the time as "H:MM AM/PM" with no leading zero on
// the hour.
func (t TimeOfDay) Format12() string {
	hour := int(t) / 60
	minute := int(t) % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}

func (t TimeOfDay) String() string {
	return t.Format24()
}

// Valid reports whether t falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}
