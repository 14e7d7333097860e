package doctorRepo

import "clinicore/models"

// DoctorRepository defines persistence operations for doctor
// profiles.
type DoctorRepository interface {
	Create(doc *models.Doctor) error
	GetByID(id string) (*models.Doctor, error)
	GetByEmail(email string) (*models.Doctor, error)
	GetByTokenHash(hash string) (*models.Doctor, error)
	GetAll() ([]models.Doctor, error)
	ListApproved() ([]models.Doctor, error)
	Update(doc *models.Doctor) error
	UpdateHours(id string, hours models.WorkingHours) error
	UpdateStatus(id, status string) error
	SetTokenHash(id, hash string) error
	Delete(id string) error
}
