package models

import "time"

// Doctor approval lifecycle.
const (
	DoctorStatusPending  = "pending"
	DoctorStatusApproved = "approved"
	DoctorStatusRejected = "rejected"
)

// WorkingHours is a doctor's session configuration as stored in the
// document store. Times are clock strings; records written by older
// clients may use the 12-hour form. Empty fields mean "use the
// clinic defaults".
type WorkingHours struct {
	MorningStartTime     string `bson:"morningStartTime,omitempty" json:"morningStartTime,omitempty"` // e.g. "09:00" or "9:00 AM"
	MorningEndTime       string `bson:"morningEndTime,omitempty" json:"morningEndTime,omitempty"`
	EveningStartTime     string `bson:"eveningStartTime,omitempty" json:"eveningStartTime,omitempty"`
	EveningEndTime       string `bson:"eveningEndTime,omitempty" json:"eveningEndTime,omitempty"`
	ConsultationDuration int    `bson:"consultationDuration,omitempty" json:"consultationDuration,omitempty"` // minutes
}

// Doctor represents a doctor profile managed through the admin portal.
type Doctor struct {
	ID            string       `bson:"id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	Email         string       `bson:"email" json:"email"`
	Phone         string       `bson:"phone" json:"phone"`
	Specialty     string       `bson:"specialty" json:"specialty"`
	Qualification string       `bson:"qualification,omitempty" json:"qualification,omitempty"`
	PasswordHash  string       `bson:"passwordHash" json:"-"`
	TokenHash     string       `bson:"tokenHash,omitempty" json:"-"`
	Status        string       `bson:"status" json:"status"` // pending | approved | rejected
	Hours         WorkingHours `bson:"hours,omitempty" json:"hours"`
	ConsultFee    float64      `bson:"consultFee,omitempty" json:"consultFee,omitempty"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// DoctorRegistration is the payload for creating a doctor account.
type DoctorRegistration struct {
	Name          string       `json:"name" binding:"required"`
	Email         string       `json:"email" binding:"required,email"`
	Phone         string       `json:"phone" binding:"required"`
	Specialty     string       `json:"specialty" binding:"required"`
	Qualification string       `json:"qualification"`
	Password      string       `json:"password" binding:"required,min=8"`
	Hours         WorkingHours `json:"hours"`
	ConsultFee    float64      `json:"consultFee"`
}

// SetupHoursRequest defines the payload for configuring a doctor's
// session windows and consultation duration.
type SetupHoursRequest struct {
	Hours WorkingHours `json:"hours" binding:"required"`
}
