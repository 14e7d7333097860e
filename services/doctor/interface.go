package doctor

import (
	"context"

	doctorRepo "clinicore/database/repository/doctor"
	overrideRepo "clinicore/database/repository/override"
	"clinicore/models"
)

// DoctorService manages doctor profiles, working hours, schedule
// overrides and the admin approval lifecycle.
type DoctorService interface {
	// Register creates a pending doctor profile. The account cannot
	// sign in until an admin approves it.
	Register(ctx context.Context, req models.DoctorRegistration) (*models.Doctor, error)

	// Signin authenticates an approved doctor and returns a signed
	// token.
	Signin(ctx context.Context, email, password string) (*models.Doctor, string, error)

	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	ListApproved(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, doc *models.Doctor) (*models.Doctor, error)
	Delete(ctx context.Context, id string) error

	// SetHours replaces the doctor's session windows and consultation
	// duration after validating the clock strings.
	SetHours(ctx context.Context, id string, hours models.WorkingHours) (*models.Doctor, error)

	// SetStatus moves the profile through the approval lifecycle
	// (pending, approved, rejected). Admin only.
	SetStatus(ctx context.Context, id, status string) error

	// AddOverride blocks out a holiday or a blackout window on the
	// doctor's calendar.
	AddOverride(ctx context.Context, o *models.ScheduleOverride) (*models.ScheduleOverride, error)
	ListOverrides(ctx context.Context, doctorID string) ([]models.ScheduleOverride, error)
	DeleteOverride(ctx context.Context, id string) error

	RevokeToken(ctx context.Context, id string) error
}

// DefaultDoctorService is the production implementation backed by
// Mongo.
type DefaultDoctorService struct {
	Repo         doctorRepo.DoctorRepository
	OverrideRepo overrideRepo.OverrideRepository
}
