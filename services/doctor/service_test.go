package doctor

import (
	"context"
	"testing"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeDoctorRepo struct {
	docs map[string]*models.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{docs: map[string]*models.Doctor{}}
}

func (f *fakeDoctorRepo) Create(doc *models.Doctor) error {
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	if d, ok := f.docs[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	for _, d := range f.docs {
		if d.Email == email {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) GetByTokenHash(hash string) (*models.Doctor, error) {
	for _, d := range f.docs {
		if d.TokenHash == hash {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.docs {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) ListApproved() ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.docs {
		if d.Status == models.DoctorStatusApproved {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) Update(doc *models.Doctor) error {
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDoctorRepo) UpdateHours(id string, hours models.WorkingHours) error {
	f.docs[id].Hours = hours
	return nil
}

func (f *fakeDoctorRepo) UpdateStatus(id, status string) error {
	f.docs[id].Status = status
	return nil
}

func (f *fakeDoctorRepo) SetTokenHash(id, hash string) error {
	f.docs[id].TokenHash = hash
	return nil
}

func (f *fakeDoctorRepo) Delete(id string) error {
	delete(f.docs, id)
	return nil
}

type fakeOverrideRepo struct {
	overrides map[string]*models.ScheduleOverride
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{overrides: map[string]*models.ScheduleOverride{}}
}

func (f *fakeOverrideRepo) Create(o *models.ScheduleOverride) error {
	cp := *o
	f.overrides[o.ID] = &cp
	return nil
}

func (f *fakeOverrideRepo) ListByDoctorDate(doctorID, date string) ([]models.ScheduleOverride, error) {
	var out []models.ScheduleOverride
	for _, o := range f.overrides {
		if o.DoctorID == doctorID && o.Date == date {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOverrideRepo) ListByDoctor(doctorID string) ([]models.ScheduleOverride, error) {
	var out []models.ScheduleOverride
	for _, o := range f.overrides {
		if o.DoctorID == doctorID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOverrideRepo) Delete(id string) error {
	delete(f.overrides, id)
	return nil
}

func newTestService() (*DefaultDoctorService, *fakeDoctorRepo) {
	repo := newFakeDoctorRepo()
	return &DefaultDoctorService{Repo: repo, OverrideRepo: newFakeOverrideRepo()}, repo
}

func registration() models.DoctorRegistration {
	return models.DoctorRegistration{
		Name:      "Dr. Asha Rao",
		Email:     "asha@clinic.test",
		Phone:     "5550100",
		Specialty: "Cardiology",
		Password:  "correct-horse",
	}
}

func TestRegisterStartsPending(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, err := svc.Register(ctx, registration())
	require.NoError(t, err)
	assert.Equal(t, models.DoctorStatusPending, doc.Status)
	assert.NotEmpty(t, doc.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte("correct-horse")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)
	_, err = svc.Register(ctx, registration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSigninRequiresApproval(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	doc, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	_, _, err = svc.Signin(ctx, doc.Email, "correct-horse")
	assert.ErrorIs(t, err, ErrNotApproved)

	require.NoError(t, repo.UpdateStatus(doc.ID, models.DoctorStatusApproved))
	rec, token, err := svc.Signin(ctx, doc.Email, "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, repo.docs[rec.ID].TokenHash)

	_, _, err = svc.Signin(ctx, doc.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetHoursValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	// 12-hour clock strings are accepted.
	updated, err := svc.SetHours(ctx, doc.ID, models.WorkingHours{
		MorningStartTime:     "8:30 AM",
		MorningEndTime:       "12:30 PM",
		ConsultationDuration: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, "8:30 AM", updated.Hours.MorningStartTime)

	// Inverted windows are refused.
	_, err = svc.SetHours(ctx, doc.ID, models.WorkingHours{
		MorningStartTime: "13:00",
		MorningEndTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidHours)

	// An unparseable clock string is refused.
	_, err = svc.SetHours(ctx, doc.ID, models.WorkingHours{
		EveningStartTime: "14h00",
		EveningEndTime:   "18:00",
	})
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestSetStatusLifecycle(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	doc, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, doc.ID, models.DoctorStatusApproved))
	assert.Equal(t, models.DoctorStatusApproved, repo.docs[doc.ID].Status)

	assert.ErrorIs(t, svc.SetStatus(ctx, doc.ID, "suspended"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", models.DoctorStatusApproved), ErrNotFound)
}

func TestAddOverrideNormalizesBlackoutWindow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	o, err := svc.AddOverride(ctx, &models.ScheduleOverride{
		DoctorID:  doc.ID,
		Date:      "2026-09-15",
		Kind:      models.OverrideBlackout,
		StartTime: "9:00 AM",
		EndTime:   "10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", o.StartTime)
	assert.Equal(t, "10:00", o.EndTime)
	assert.NotEmpty(t, o.ID)
}

func TestAddOverrideRejectsBadInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	cases := []models.ScheduleOverride{
		{DoctorID: doc.ID, Date: "15/09/2026", Kind: models.OverrideHoliday},
		{DoctorID: doc.ID, Date: "2026-09-15", Kind: "vacation"},
		{DoctorID: doc.ID, Date: "2026-09-15", Kind: models.OverrideBlackout, StartTime: "10:00", EndTime: "09:00"},
		{DoctorID: doc.ID, Date: "2026-09-15", Kind: models.OverrideBlackout, StartTime: "", EndTime: "10:00"},
	}
	for _, c := range cases {
		o := c
		_, err := svc.AddOverride(ctx, &o)
		assert.ErrorIs(t, err, ErrInvalidOverride)
	}
}

func TestAddOverrideClearsHolidayWindow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	o, err := svc.AddOverride(ctx, &models.ScheduleOverride{
		DoctorID:  doc.ID,
		Date:      "2026-09-15",
		Kind:      models.OverrideHoliday,
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	assert.Empty(t, o.StartTime)
	assert.Empty(t, o.EndTime)
}
