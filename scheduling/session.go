package scheduling

// Session identifies which half of a doctor's working day a time
// belongs to.
type Session string

const (
	SessionMorning Session = "morning"
	SessionEvening Session = "evening"
)

func (s Session) String() string { return string(s) }

// DefaultSessionCutoff is the boundary used to classify a time when a
// doctor has no explicit session windows configured: strictly before
// the cutoff is morning, at or after is evening.
const DefaultSessionCutoff = TimeOfDay(14 * 60) // 14:00

// SessionWindow is the start/end pair of one session. Containment is
// half-open: a time exactly at End belongs to the next session.
type SessionWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether t falls inside the window, treating the
// window as [Start, End).
func (w SessionWindow) Contains(t TimeOfDay) bool {
	return t >= w.Start && t < w.End
}

// Empty reports whether the window can hold no time at all.
func (w SessionWindow) Empty() bool {
	return w.Start >= w.End
}

// SessionOf classifies t against the doctor's configured windows.
// When neither window contains t (legacy records without explicit
// hours, or out-of-window times), it falls back to the
// DefaultSessionCutoff split. It never fails: calendar validity
// (holidays, closures) is the schedule-override lookup's concern.
func SessionOf(t TimeOfDay, hours DoctorHours) Session {
	resolved := hours.Resolve()
	if resolved.Morning.Contains(t) {
		return SessionMorning
	}
	if resolved.Evening.Contains(t) {
		return SessionEvening
	}
	if t < DefaultSessionCutoff {
		return SessionMorning
	}
	return SessionEvening
}
