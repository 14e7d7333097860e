package scheduling

import "testing"

func window(start, end string) SessionWindow {
	s, _ := ParseTime(start)
	e, _ := ParseTime(end)
	return SessionWindow{Start: s, End: e}
}

func TestGenerateSlotsMorningWindow(t *testing.T) {
	slots := GenerateSlots(window("09:00", "13:00"), 20)

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	if slots[0].Format24() != "09:00" {
		t.Errorf("first slot = %s, want 09:00", slots[0])
	}
	if slots[len(slots)-1].Format24() != "12:40" {
		t.Errorf("last slot = %s, want 12:40", slots[len(slots)-1])
	}

	end, _ := ParseTime("13:00")
	for _, s := range slots {
		if int(s)+20 > int(end) {
			t.Errorf("slot %s does not leave room for a full appointment", s)
		}
	}
}

func TestGenerateSlotsBoundarySlotIncluded(t *testing.T) {
	// 10:00-11:00 with 30-minute slots: 10:30 starts exactly at
	// end-duration and must be included.
	slots := GenerateSlots(window("10:00", "11:00"), 30)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[1].Format24() != "10:30" {
		t.Errorf("boundary slot = %s, want 10:30", slots[1])
	}
}

func TestGenerateSlotsExcludesPartialTail(t *testing.T) {
	// 09:00-10:10 with 30-minute slots: 09:50 would overrun the
	// window and must not be emitted.
	slots := GenerateSlots(window("09:00", "10:10"), 30)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
}

func TestGenerateSlotsEmptyCases(t *testing.T) {
	cases := []struct {
		name     string
		w        SessionWindow
		duration int
	}{
		{"zero duration", window("09:00", "13:00"), 0},
		{"negative duration", window("09:00", "13:00"), -15},
		{"inverted window", window("13:00", "09:00"), 20},
		{"degenerate window", window("09:00", "09:00"), 20},
		{"duration longer than window", window("09:00", "09:10"), 20},
	}
	for _, c := range cases {
		if slots := GenerateSlots(c.w, c.duration); len(slots) != 0 {
			t.Errorf("%s: expected no slots, got %d", c.name, len(slots))
		}
	}
}

func TestGenerateSlotsOneMinuteDuration(t *testing.T) {
	slots := GenerateSlots(window("09:00", "09:05"), 1)
	if len(slots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(slots))
	}
}
