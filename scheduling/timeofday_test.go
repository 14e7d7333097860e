package scheduling

import "testing"

func TestParseTime24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:05", 785},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, ok := ParseTime(c.in)
		if !ok {
			t.Errorf("ParseTime(%q) not ok", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTime(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseTime12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"12:00 AM", 0},      // midnight
		{"12:30 am", 30},     // case-insensitive
		{"9:00 AM", 540},     // no leading zero
		{"09:00 AM", 540},    // leading zero accepted
		{"12:00 PM", 720},    // noon unchanged
		{"1:00 PM", 780},     // PM adds 12
		{"11:59 pm", 1439},   //
		{"6:15PM", 18*60 + 15}, // no space before meridiem
	}
	for _, c := range cases {
		got, ok := ParseTime(c.in)
		if !ok {
			t.Errorf("ParseTime(%q) not ok", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTime(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "noon", "25:00", "12:60", "13:00 PM", "0:30 AM", "9", "9:0:0"} {
		if _, ok := ParseTime(in); ok {
			t.Errorf("ParseTime(%q) unexpectedly ok", in)
		}
	}
}

func TestParseTimeOrFallsBack(t *testing.T) {
	def := TimeOfDay(9 * 60)
	if got := ParseTimeOr("not-a-time", def); got != def {
		t.Errorf("ParseTimeOr fallback = %d, want %d", got, def)
	}
	if got := ParseTimeOr("10:30", def); got != 630 {
		t.Errorf("ParseTimeOr valid input = %d, want 630", got)
	}
}

func TestFormat24(t *testing.T) {
	if got := TimeOfDay(540).Format24(); got != "09:00" {
		t.Errorf("Format24 = %q, want 09:00", got)
	}
	if got := TimeOfDay(0).Format24(); got != "00:00" {
		t.Errorf("Format24 midnight = %q, want 00:00", got)
	}
}

func TestFormat12(t *testing.T) {
	cases := []struct {
		in   TimeOfDay
		want string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{720, "12:00 PM"},
		{785, "1:05 PM"},
		{1439, "11:59 PM"},
	}
	for _, c := range cases {
		if got := c.in.Format12(); got != c.want {
			t.Errorf("Format12(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Round-trip: parsing either rendered form must recover the original
// minute value, for every minute of the day.
func TestFormatParseRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		tod := TimeOfDay(m)

		got24, ok := ParseTime(tod.Format24())
		if !ok || got24 != tod {
			t.Fatalf("24h round-trip broken at %d: got %d ok=%v", m, got24, ok)
		}

		got12, ok := ParseTime(tod.Format12())
		if !ok || got12 != tod {
			t.Fatalf("12h round-trip broken at %d: got %d ok=%v", m, got12, ok)
		}
	}
}
