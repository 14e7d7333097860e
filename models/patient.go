package models

import "time"

// Patient represents a patient-portal account.
type Patient struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	TokenHash     string    `bson:"tokenHash,omitempty" json:"-"`
	EmailVerified bool      `bson:"emailVerified" json:"emailVerified"`
	DateOfBirth   string    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"` // "2006-01-02"
	Gender        string    `bson:"gender,omitempty" json:"gender,omitempty"`
	BloodGroup    string    `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PatientRegistration is the signup payload.
type PatientRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// PatientAuthResponse is returned after a successful signin or OTP
// verification.
type PatientAuthResponse struct {
	Patient *Patient `json:"patient"`
	Token   string   `json:"token,omitempty"`
	// SessionID is set when OTP verification is still pending.
	SessionID string `json:"sessionId,omitempty"`
}
