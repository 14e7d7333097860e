package appointmentRepo

import "clinicore/models"

// AppointmentRepository defines persistence operations for
// appointments.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	Update(appt *models.Appointment) error
	UpdateStatus(id, status string) error
	Delete(id string) error

	// ListByDoctorDate returns appointments for a doctor on a date,
	// optionally filtered to the given statuses (nil means all).
	ListByDoctorDate(doctorID, date string, statuses []string) ([]models.Appointment, error)
	// ListByPatient returns a patient's appointments, newest date first.
	ListByPatient(patientID string) ([]models.Appointment, error)
	// GetAll returns every appointment (admin portal listing).
	GetAll() ([]models.Appointment, error)

	// BookedTimes returns the raw time strings of the active
	// appointments for a doctor+date, in whichever format they were
	// stored. Callers normalize before comparing.
	BookedTimes(doctorID, date string) ([]string, error)
	// TokensFor returns the token strings issued for a doctor+date,
	// optionally scoped to one session, considering active statuses
	// only.
	TokensFor(doctorID, date, session string) ([]string, error)
}
