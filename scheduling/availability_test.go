package scheduling

import "testing"

func TestNextAvailableSlotFirstFit(t *testing.T) {
	hours := standardHours()

	slot, ok := NextAvailableSlot(hours, SessionMorning, nil)
	if !ok {
		t.Fatal("expected a slot in an empty morning")
	}
	if slot.Format24() != "09:00" {
		t.Errorf("first slot = %s, want 09:00", slot)
	}

	slot, ok = NextAvailableSlot(hours, SessionMorning, []string{"09:00", "09:20"})
	if !ok {
		t.Fatal("expected a slot")
	}
	if slot.Format24() != "09:40" {
		t.Errorf("first free slot = %s, want 09:40", slot)
	}
}

func TestNextAvailableSlotFormatInsensitive(t *testing.T) {
	hours := standardHours()

	// A 12-hour booked entry must exclude the matching 24-hour slot.
	slot, ok := NextAvailableSlot(hours, SessionMorning, []string{"9:00 AM"})
	if !ok {
		t.Fatal("expected a slot")
	}
	if slot.Format24() != "09:20" {
		t.Errorf("slot = %s, want 09:20 (09:00 booked as '9:00 AM')", slot)
	}
}

func TestNextAvailableSlotSessionFull(t *testing.T) {
	hours := standardHours()

	// Evening 14:00-18:00 at 20 minutes is 12 slots; book all of
	// them, mixing the two string formats.
	evening := GenerateSlots(window("14:00", "18:00"), 20)
	if len(evening) != 12 {
		t.Fatalf("expected 12 evening slots, got %d", len(evening))
	}
	booked := make([]string, 0, len(evening))
	for i, s := range evening {
		if i%2 == 0 {
			booked = append(booked, s.Format24())
		} else {
			booked = append(booked, s.Format12())
		}
	}

	if _, ok := NextAvailableSlot(hours, SessionEvening, booked); ok {
		t.Error("expected session-full, got a slot")
	}
}

func TestNextAvailableSlotDeterministic(t *testing.T) {
	hours := standardHours()
	booked := []string{"09:00", "10:00 AM", "garbage", "09:40"}

	first, ok := NextAvailableSlot(hours, SessionMorning, booked)
	if !ok {
		t.Fatal("expected a slot")
	}
	for i := 0; i < 10; i++ {
		again, ok := NextAvailableSlot(hours, SessionMorning, booked)
		if !ok || again != first {
			t.Fatalf("run %d: got %s ok=%v, want %s", i, again, ok, first)
		}
	}
	if first.Format24() != "09:20" {
		t.Errorf("slot = %s, want 09:20", first)
	}
}

func TestNextAvailableSlotDiscardsUnparseableBooked(t *testing.T) {
	hours := standardHours()

	// Garbage entries must not block anything.
	slot, ok := NextAvailableSlot(hours, SessionMorning, []string{"", "soon", "99:99"})
	if !ok || slot.Format24() != "09:00" {
		t.Errorf("slot = %s ok=%v, want 09:00", slot, ok)
	}
}

func TestAvailableSlotsSubtractsBooked(t *testing.T) {
	hours := standardHours()

	free := AvailableSlots(hours, SessionMorning, []string{"09:20", "12:40"})
	if len(free) != 10 {
		t.Fatalf("expected 10 free slots, got %d", len(free))
	}
	for _, s := range free {
		if s.Format24() == "09:20" || s.Format24() == "12:40" {
			t.Errorf("booked slot %s still present", s)
		}
	}
}

func TestNextAvailableSlotUsesDefaults(t *testing.T) {
	// Empty config: defaults 09:00-13:00 / 20 minutes apply.
	var hours DoctorHours
	slot, ok := NextAvailableSlot(hours, SessionMorning, nil)
	if !ok || slot.Format24() != "09:00" {
		t.Errorf("slot = %s ok=%v, want 09:00 from defaults", slot, ok)
	}
}
