package scheduling

import "testing"

func standardHours() DoctorHours {
	return DoctorHours{
		MorningStart: "09:00",
		MorningEnd:   "13:00",
		EveningStart: "14:00",
		EveningEnd:   "18:00",
		SlotMinutes:  20,
	}
}

func TestSessionOfExplicitWindows(t *testing.T) {
	hours := standardHours()

	cases := []struct {
		in   string
		want Session
	}{
		{"09:00", SessionMorning},
		{"12:59", SessionMorning},
		{"14:00", SessionEvening},
		{"17:59", SessionEvening},
	}
	for _, c := range cases {
		tod, _ := ParseTime(c.in)
		if got := SessionOf(tod, hours); got != c.want {
			t.Errorf("SessionOf(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestSessionOfEndBoundaryIsNextSession(t *testing.T) {
	hours := standardHours()

	// A window ending exactly at the evening start makes the half-open
	// rule observable: 14:00 is not contained by a morning window
	// ending at 14:00 and must land in evening.
	hours.MorningEnd = "14:00"
	morningEnd, _ := ParseTime("14:00")
	if got := SessionOf(morningEnd, hours); got != SessionEvening {
		t.Errorf("time at morning end = %s, want evening", got)
	}

	// Same rule at the evening end: 18:00 is outside [14:00,18:00),
	// and the fallback cutoff sends it to evening.
	eveningEnd, _ := ParseTime("18:00")
	if got := SessionOf(eveningEnd, hours); got != SessionEvening {
		t.Errorf("time at evening end = %s, want evening", got)
	}
}

func TestSessionOfFallbackCutoff(t *testing.T) {
	// No explicit windows at all: the 14:00 cutoff decides.
	var hours DoctorHours
	hours.MorningStart = "xx"
	hours.MorningEnd = "xx"
	hours.EveningStart = "xx"
	hours.EveningEnd = "xx"

	// Defaults kick in for unparseable fields, so containment still
	// applies inside the default windows; probe the gap between them.
	t1330, _ := ParseTime("13:30")
	if got := SessionOf(t1330, hours); got != SessionMorning {
		t.Errorf("13:30 (gap, before cutoff) = %s, want morning", got)
	}

	t1830, _ := ParseTime("18:30")
	if got := SessionOf(t1830, hours); got != SessionEvening {
		t.Errorf("18:30 (gap, after cutoff) = %s, want evening", got)
	}
}

func TestResolveDefaults(t *testing.T) {
	var hours DoctorHours
	r := hours.Resolve()

	if r.Morning.Start != DefaultMorningStart || r.Morning.End != DefaultMorningEnd {
		t.Errorf("morning defaults = %s-%s", r.Morning.Start, r.Morning.End)
	}
	if r.Evening.Start != DefaultEveningStart || r.Evening.End != DefaultEveningEnd {
		t.Errorf("evening defaults = %s-%s", r.Evening.Start, r.Evening.End)
	}
	if r.SlotMinutes != DefaultSlotMinutes {
		t.Errorf("slot minutes default = %d", r.SlotMinutes)
	}
}

func TestResolveExplicitConfigWins(t *testing.T) {
	hours := DoctorHours{
		MorningStart: "8:00 AM",
		MorningEnd:   "12:00 PM",
		SlotMinutes:  15,
	}
	r := hours.Resolve()

	if r.Morning.Start.Format24() != "08:00" || r.Morning.End.Format24() != "12:00" {
		t.Errorf("explicit morning window lost: %s-%s", r.Morning.Start, r.Morning.End)
	}
	if r.SlotMinutes != 15 {
		t.Errorf("explicit slot minutes lost: %d", r.SlotMinutes)
	}
	// Unset evening fields still fall back.
	if r.Evening.Start != DefaultEveningStart {
		t.Errorf("evening start = %s, want default", r.Evening.Start)
	}
}
