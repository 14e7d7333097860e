package booking

import "errors"

var (
	// ErrDoctorNotFound is returned when the doctor does not exist or
	// is not approved for booking.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrSlotTaken is returned when the requested time is already
	// booked, including the case where a concurrent booking won the
	// slot between read and write.
	ErrSlotTaken = errors.New("slot already booked")

	// ErrSessionFull is returned when no free slot remains in the
	// requested session.
	ErrSessionFull = errors.New("session fully booked")

	// ErrDayFull is returned by emergency booking when both sessions
	// of the date are exhausted.
	ErrDayFull = errors.New("no slots available for the date")

	// ErrDoctorUnavailable is returned when a holiday or blackout
	// override blocks the requested time.
	ErrDoctorUnavailable = errors.New("doctor unavailable on the requested date")

	// ErrInvalidTime is returned when the requested time string
	// cannot be parsed or does not match a bookable slot.
	ErrInvalidTime = errors.New("invalid appointment time")

	// ErrNotFound is returned for operations on missing appointments.
	ErrNotFound = errors.New("appointment not found")

	// ErrForbidden is returned when a patient operates on an
	// appointment that is not theirs.
	ErrForbidden = errors.New("appointment does not belong to patient")

	// ErrInvalidStatus is returned for unknown status transitions.
	ErrInvalidStatus = errors.New("invalid appointment status")
)
