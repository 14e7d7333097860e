package scheduling

// Fallback working hours applied when a doctor's configuration omits
// a field. These are the single source of the defaults; callers must
// not re-literal them.
const (
	DefaultMorningStart = TimeOfDay(9 * 60)  // 09:00
	DefaultMorningEnd   = TimeOfDay(13 * 60) // 13:00
	DefaultEveningStart = TimeOfDay(14 * 60) // 14:00
	DefaultEveningEnd   = TimeOfDay(18 * 60) // 18:00

	// DefaultSlotMinutes is the per-appointment duration assumed when
	// a doctor has not configured one.
	DefaultSlotMinutes = 20
)

// DoctorHours carries one doctor's working-time configuration as it
// arrives from the document store: clock strings in either the 24-hour
// or 12-hour form, and a consultation duration in minutes. Empty or
// malformed fields fall back to the package defaults; explicit config
// always wins over the defaults.
type DoctorHours struct {
	MorningStart string
	MorningEnd   string
	EveningStart string
	EveningEnd   string
	SlotMinutes  int
}

// ResolvedHours is DoctorHours after normalization: concrete windows
// and a positive slot duration.
type ResolvedHours struct {
	Morning     SessionWindow
	Evening     SessionWindow
	SlotMinutes int
}

// Resolve normalizes the raw configuration, substituting defaults for
// missing or unparseable fields.
func (h DoctorHours) Resolve() ResolvedHours {
	r := ResolvedHours{
		Morning: SessionWindow{
			Start: ParseTimeOr(h.MorningStart, DefaultMorningStart),
			End:   ParseTimeOr(h.MorningEnd, DefaultMorningEnd),
		},
		Evening: SessionWindow{
			Start: ParseTimeOr(h.EveningStart, DefaultEveningStart),
			End:   ParseTimeOr(h.EveningEnd, DefaultEveningEnd),
		},
		SlotMinutes: h.SlotMinutes,
	}
	if r.SlotMinutes <= 0 {
		r.SlotMinutes = DefaultSlotMinutes
	}
	return r
}

// Window returns the resolved window for the requested session.
func (r ResolvedHours) Window(s Session) SessionWindow {
	if s == SessionEvening {
		return r.Evening
	}
	return r.Morning
}
