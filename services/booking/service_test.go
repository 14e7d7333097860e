package booking

import (
	"context"
	"fmt"
	"testing"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- in-memory fakes ---

type fakeApptRepo struct {
	appts  []models.Appointment
	dupOne bool // force one duplicate-key error on the next Create
}

func (f *fakeApptRepo) Create(a *models.Appointment) error {
	if f.dupOne {
		f.dupOne = false
		// The shape mongo raises for a unique-index violation.
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	for _, existing := range f.appts {
		if existing.DoctorID == a.DoctorID && existing.Date == a.Date &&
			existing.Time == a.Time && isActive(existing.Status) {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	f.appts = append(f.appts, *a)
	return nil
}

func isActive(status string) bool {
	for _, s := range models.ActiveAppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (f *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeApptRepo) Update(a *models.Appointment) error { return nil }

func (f *fakeApptRepo) UpdateStatus(id, status string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("appointment with id %s not found", id)
}

func (f *fakeApptRepo) Delete(id string) error { return nil }

func (f *fakeApptRepo) ListByDoctorDate(doctorID, date string, statuses []string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) GetAll() ([]models.Appointment, error) { return f.appts, nil }

func (f *fakeApptRepo) BookedTimes(doctorID, date string) ([]string, error) {
	var out []string
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date && isActive(a.Status) {
			out = append(out, a.Time)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) TokensFor(doctorID, date, session string) ([]string, error) {
	var out []string
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date && isActive(a.Status) {
			if session == "" || a.Session == session {
				out = append(out, a.TokenNumber)
			}
		}
	}
	return out, nil
}

type fakeDoctorRepo struct{ doctors map[string]*models.Doctor }

func (f *fakeDoctorRepo) Create(d *models.Doctor) error                       { return nil }
func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error)           { return f.doctors[id], nil }
func (f *fakeDoctorRepo) GetByEmail(e string) (*models.Doctor, error)         { return nil, nil }
func (f *fakeDoctorRepo) GetByTokenHash(h string) (*models.Doctor, error)     { return nil, nil }
func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error)                    { return nil, nil }
func (f *fakeDoctorRepo) ListApproved() ([]models.Doctor, error)              { return nil, nil }
func (f *fakeDoctorRepo) Update(d *models.Doctor) error                       { return nil }
func (f *fakeDoctorRepo) UpdateHours(id string, h models.WorkingHours) error  { return nil }
func (f *fakeDoctorRepo) UpdateStatus(id, status string) error                { return nil }
func (f *fakeDoctorRepo) SetTokenHash(id, hash string) error                  { return nil }
func (f *fakeDoctorRepo) Delete(id string) error                              { return nil }

type fakePatientRepo struct{ patients map[string]*models.Patient }

func (f *fakePatientRepo) Create(p *models.Patient) error                   { return nil }
func (f *fakePatientRepo) GetByID(id string) (*models.Patient, error)       { return f.patients[id], nil }
func (f *fakePatientRepo) GetByEmail(e string) (*models.Patient, error)     { return nil, nil }
func (f *fakePatientRepo) GetByTokenHash(h string) (*models.Patient, error) { return nil, nil }
func (f *fakePatientRepo) GetAll() ([]models.Patient, error)                { return nil, nil }
func (f *fakePatientRepo) Update(p *models.Patient) error                   { return nil }
func (f *fakePatientRepo) SetEmailVerified(id string) error                 { return nil }
func (f *fakePatientRepo) SetTokenHash(id, hash string) error               { return nil }
func (f *fakePatientRepo) SetPasswordHash(id, hash string) error            { return nil }
func (f *fakePatientRepo) Delete(id string) error                           { return nil }

type fakeOverrideRepo struct{ overrides []models.ScheduleOverride }

func (f *fakeOverrideRepo) Create(o *models.ScheduleOverride) error { return nil }
func (f *fakeOverrideRepo) ListByDoctorDate(doctorID, date string) ([]models.ScheduleOverride, error) {
	var out []models.ScheduleOverride
	for _, o := range f.overrides {
		if o.DoctorID == doctorID && o.Date == date {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOverrideRepo) ListByDoctor(doctorID string) ([]models.ScheduleOverride, error) {
	return f.overrides, nil
}
func (f *fakeOverrideRepo) Delete(id string) error { return nil }

// --- fixtures ---

const (
	testDoctorID  = "doc-1"
	testPatientID = "pat-1"
	testDate      = "2026-09-14"
)

func newTestService(overrides ...models.ScheduleOverride) (*DefaultBookingService, *fakeApptRepo) {
	appts := &fakeApptRepo{}
	svc := &DefaultBookingService{
		ApptRepo: appts,
		DoctorRepo: &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			testDoctorID: {
				ID:     testDoctorID,
				Name:   "Dr. Mwangi",
				Status: models.DoctorStatusApproved,
				Hours: models.WorkingHours{
					MorningStartTime:     "09:00",
					MorningEndTime:       "13:00",
					EveningStartTime:     "14:00",
					EveningEndTime:       "18:00",
					ConsultationDuration: 20,
				},
			},
		}},
		PatientRepo: &fakePatientRepo{patients: map[string]*models.Patient{
			testPatientID: {ID: testPatientID, Name: "Asha", Email: "asha@example.com"},
		}},
		OverrideRepo: &fakeOverrideRepo{overrides: overrides},
	}
	return svc, appts
}

// --- tests ---

func TestBookAppointmentAssignsFirstFreeSlotAndToken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", first.Time)
	assert.Equal(t, "#1", first.TokenNumber)
	assert.Equal(t, "morning", first.Session)
	assert.Equal(t, models.AppointmentStatusScheduled, first.Status)

	second, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:20", second.Time)
	assert.Equal(t, "#2", second.TokenNumber)
}

func TestBookAppointmentExplicitTime(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Time: "10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", appt.Time, "12-hour input stored in canonical form")
	assert.Equal(t, "morning", appt.Session)

	// The same slot again, in the other format, is taken.
	_, err = svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookAppointmentRejectsOffGridTime(t *testing.T) {
	svc, _ := newTestService()

	// 09:10 is not on the 20-minute grid.
	_, err := svc.BookAppointment(context.Background(), testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Time: "09:10",
	})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestBookAppointmentSessionFull(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Morning 09:00-13:00 at 20 minutes holds 12 appointments.
	for i := 0; i < 12; i++ {
		_, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
			DoctorID: testDoctorID, Date: testDate, Session: "morning",
		})
		require.NoError(t, err, "booking %d", i)
	}

	_, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	assert.ErrorIs(t, err, ErrSessionFull)
}

func TestBookAppointmentConcurrentLoserGetsSlotTaken(t *testing.T) {
	svc, appts := newTestService()
	appts.dupOne = true

	_, err := svc.BookAppointment(context.Background(), testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookAppointmentHoliday(t *testing.T) {
	svc, _ := newTestService(models.ScheduleOverride{
		ID: "ov-1", DoctorID: testDoctorID, Date: testDate, Kind: models.OverrideHoliday,
	})

	_, err := svc.BookAppointment(context.Background(), testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
}

func TestBookAppointmentBlackoutWindowSkipped(t *testing.T) {
	svc, _ := newTestService(models.ScheduleOverride{
		ID: "ov-2", DoctorID: testDoctorID, Date: testDate,
		Kind: models.OverrideBlackout, StartTime: "09:00", EndTime: "10:00",
	})

	appt, err := svc.BookAppointment(context.Background(), testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", appt.Time, "slots inside the blackout are skipped")
}

func TestBookEmergencyFallsThroughToEvening(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Fill the morning.
	for i := 0; i < 12; i++ {
		_, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
			DoctorID: testDoctorID, Date: testDate, Session: "morning",
		})
		require.NoError(t, err)
	}

	appt, err := svc.BookEmergency(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00", appt.Time)
	assert.Equal(t, "evening", appt.Session)
	assert.True(t, appt.Emergency)
	assert.Equal(t, "#1", appt.TokenNumber, "token queue is per session")
}

func TestBookEmergencyDayFull(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 24; i++ {
		sess := "morning"
		if i >= 12 {
			sess = "evening"
		}
		_, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
			DoctorID: testDoctorID, Date: testDate, Session: sess,
		})
		require.NoError(t, err)
	}

	_, err := svc.BookEmergency(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate,
	})
	assert.ErrorIs(t, err, ErrDayFull)
}

func TestCancelFreesSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelAppointment(ctx, appt.ID, testPatientID))

	again, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	require.NoError(t, err)
	assert.Equal(t, appt.Time, again.Time, "cancelled slot is bookable again")
}

func TestCancelOtherPatientsAppointmentForbidden(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	require.NoError(t, err)

	err = svc.CancelAppointment(ctx, appt.ID, "someone-else")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetAvailableSlots(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Time: "09:00",
	})
	require.NoError(t, err)

	resp, err := svc.GetAvailableSlots(ctx, testDoctorID, testDate, "morning")
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 11)
	assert.Equal(t, "09:20", resp.Slots[0])
	assert.NotContains(t, resp.Slots, "09:00")
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	appt, err := svc.BookAppointment(ctx, testPatientID, models.BookingRequest{
		DoctorID: testDoctorID, Date: testDate, Session: "morning",
	})
	require.NoError(t, err)

	assert.NoError(t, svc.UpdateStatus(ctx, appt.ID, models.AppointmentStatusConfirmed))
	assert.ErrorIs(t, svc.UpdateStatus(ctx, appt.ID, "snoozed"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, "missing", models.AppointmentStatusConfirmed), ErrNotFound)
}
