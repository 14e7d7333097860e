package handlers

import (
	doctorRepo "clinicore/database/repository/doctor"
	patientRepo "clinicore/database/repository/patient"
)

// HandlerBundle groups all endpoint handlers plus the repositories
// the auth middlewares need for token-hash lookups.
type HandlerBundle struct {
	PatientRepo patientRepo.PatientRepository
	DoctorRepo  doctorRepo.DoctorRepository

	Patient *PatientHandler
	Doctor  *DoctorHandler
	Booking *BookingHandler
	Admin   *AdminHandler
}
