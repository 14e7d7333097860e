package patient

import (
	"context"

	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
	"clinicore/services/notification"
)

// PatientService manages patient accounts and the email-OTP signin
// flow.
type PatientService interface {
	// Register creates a pending account from the signup payload and
	// emails a verification OTP. It returns the session ID the client
	// must present together with the code.
	Register(ctx context.Context, req models.PatientRegistration) (*models.PatientAuthResponse, error)

	// Signin verifies credentials. Accounts that have not verified
	// their email get a fresh OTP and a pending session instead of a
	// token.
	Signin(ctx context.Context, email, password string) (*models.PatientAuthResponse, error)

	// VerifyOTP completes a pending registration or signin session and
	// returns the signed token.
	VerifyOTP(ctx context.Context, sessionID, code string) (*models.PatientAuthResponse, error)

	// ForgotPassword emails a reset OTP to the account, if it exists.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password after verifying the reset OTP.
	ResetPassword(ctx context.Context, email, code, newPassword string) error

	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, p *models.Patient) (*models.Patient, error)
	Delete(ctx context.Context, id string) error

	// RevokeToken invalidates the account's current token.
	RevokeToken(ctx context.Context, id string) error
}

// DefaultPatientService is the production implementation backed by
// Mongo, Redis sessions and the mail queue.
type DefaultPatientService struct {
	Repo     patientRepo.PatientRepository
	Notifier notification.NotificationService
}
