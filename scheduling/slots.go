package scheduling

// GenerateSlots walks the window in duration-minute steps and returns
// every start time at which a full appointment still fits:
// a slot is emitted while slot+duration <= window.End, so the boundary
// slot at End-duration is included and nothing later is. An inverted
// or empty window, or a non-positive duration, yields no slots.
func GenerateSlots(w SessionWindow, duration int) []TimeOfDay {
	if duration <= 0 || w.Empty() {
		return nil
	}

	var slots []TimeOfDay
	for cur := w.Start; int(cur)+duration <= int(w.End); cur += TimeOfDay(duration) {
		slots = append(slots, cur)
	}
	return slots
}
