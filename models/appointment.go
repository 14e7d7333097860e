package models

import "time"

// Appointment lifecycle. Active statuses occupy a slot; cancelled and
// completed appointments free it.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// ActiveAppointmentStatuses are the statuses that count against slot
// availability and token numbering.
var ActiveAppointmentStatuses = []string{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
}

// Appointment is one booked consultation. Time is always stored in
// the canonical 24-hour "HH:MM" form; older records may carry the
// 12-hour form, which readers normalize.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	PatientName string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	DoctorName  string    `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Date        string    `bson:"date" json:"date"` // "2006-01-02"
	Time        string    `bson:"time" json:"time"` // "HH:MM"
	Session     string    `bson:"session" json:"session"` // morning | evening
	TokenNumber string    `bson:"tokenNumber" json:"tokenNumber"` // "#N"
	Status      string    `bson:"status" json:"status"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Emergency   bool      `bson:"emergency,omitempty" json:"emergency,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the patient-facing booking payload. Time is
// optional: when empty the next available slot of the session is
// assigned.
type BookingRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"` // "2006-01-02"
	Session  string `json:"session"`                 // morning | evening; inferred from Time when set
	Time     string `json:"time"`                    // either clock format
	Reason   string `json:"reason"`
}

// AvailableSlotsResponse lists the remaining bookable times of one
// doctor's session.
type AvailableSlotsResponse struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Session  string   `json:"session"`
	Slots    []string `json:"slots"` // canonical "HH:MM", chronological
}
