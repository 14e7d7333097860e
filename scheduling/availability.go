package scheduling

// NormalizeBooked converts a list of booked-time strings (in either
// clock format, as stored appointment records supply them) into a set
// keyed by minutes from midnight. Unparseable entries are dropped.
func NormalizeBooked(booked []string) map[TimeOfDay]struct{} {
	set := make(map[TimeOfDay]struct{}, len(booked))
	for _, s := range booked {
		if t, ok := ParseTime(s); ok {
			set[t] = struct{}{}
		}
	}
	return set
}

// AvailableSlots returns the ordered bookable slots of one session
// after removing every slot already taken. Booked entries are
// normalized first, so "9:00 AM" excludes the generated "09:00" slot.
func AvailableSlots(hours DoctorHours, session Session, booked []string) []TimeOfDay {
	resolved := hours.Resolve()
	slots := GenerateSlots(resolved.Window(session), resolved.SlotMinutes)
	if len(slots) == 0 {
		return nil
	}

	taken := NormalizeBooked(booked)
	free := make([]TimeOfDay, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; ok {
			continue
		}
		free = append(free, slot)
	}
	return free
}

// NextAvailableSlot picks the earliest free slot of the session:
// first-fit, no randomization, so walk-in ordering stays gapless and
// predictable. The second return value is false when the session is
// fully booked, which is a valid "session full" state rather than an
// error.
func NextAvailableSlot(hours DoctorHours, session Session, booked []string) (TimeOfDay, bool) {
	free := AvailableSlots(hours, session, booked)
	if len(free) == 0 {
		return 0, false
	}
	return free[0], true
}
