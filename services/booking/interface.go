package booking

import (
	"context"

	"clinicore/models"
)

// BookingService coordinates slot availability, token assignment and
// appointment persistence for the patient and admin portals.
type BookingService interface {
	// GetAvailableSlots lists the remaining bookable times for one
	// doctor's session on a date. An empty list is a valid
	// fully-unavailable state, not an error.
	GetAvailableSlots(ctx context.Context, doctorID, date, session string) (*models.AvailableSlotsResponse, error)

	// BookAppointment books the requested slot for a patient; when
	// the request carries no time, the earliest free slot of the
	// session is assigned.
	BookAppointment(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error)

	// BookEmergency books the earliest free slot of the date,
	// checking morning before evening, and flags the appointment as
	// an emergency.
	BookEmergency(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error)

	CancelAppointment(ctx context.Context, id, patientID string) error
	UpdateStatus(ctx context.Context, id, status string) error
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
}
