package overrideRepo

import "clinicore/models"

// OverrideRepository defines persistence operations for schedule
// overrides (holidays and blackout windows).
type OverrideRepository interface {
	Create(o *models.ScheduleOverride) error
	ListByDoctorDate(doctorID, date string) ([]models.ScheduleOverride, error)
	ListByDoctor(doctorID string) ([]models.ScheduleOverride, error)
	Delete(id string) error
}
