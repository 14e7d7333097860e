package notification

import (
	"context"

	"clinicore/models"
)

// NotificationService delivers clinic email to patients. Delivery is
// asynchronous; implementations enqueue and a worker sends.
type NotificationService interface {
	// SendAppointmentConfirmation emails the booking details (date,
	// time, token) to the patient right after booking.
	SendAppointmentConfirmation(ctx context.Context, patient *models.Patient, appt *models.Appointment) error

	// ScheduleAppointmentReminder queues a reminder email to fire the
	// day before the appointment.
	ScheduleAppointmentReminder(ctx context.Context, patient *models.Patient, appt *models.Appointment) error

	// SendOTPEmail emails a one-time code for signin or password
	// reset.
	SendOTPEmail(ctx context.Context, to, otp string) error
}
