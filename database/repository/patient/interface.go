package patientRepo

import "clinicore/models"

// PatientRepository defines persistence operations for patient
// accounts.
type PatientRepository interface {
	Create(p *models.Patient) error
	GetByID(id string) (*models.Patient, error)
	GetByEmail(email string) (*models.Patient, error)
	GetByTokenHash(hash string) (*models.Patient, error)
	GetAll() ([]models.Patient, error)
	Update(p *models.Patient) error
	SetEmailVerified(id string) error
	SetTokenHash(id, hash string) error
	SetPasswordHash(id, hash string) error
	Delete(id string) error
}
